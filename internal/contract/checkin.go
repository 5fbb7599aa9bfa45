package contract

import (
	"time"

	"github.com/alexanderramin/dosewise/internal/domain"
	"github.com/alexanderramin/dosewise/internal/dosing"
)

type CheckInRequest struct {
	TemperatureCelsius float64
	FeelingBetter      bool
	// Now overrides the session's virtual clock when set.
	Now *time.Time
}

func NewCheckInRequest(temperatureCelsius float64) CheckInRequest {
	return CheckInRequest{TemperatureCelsius: temperatureCelsius}
}

type CheckInResponse struct {
	CheckedAt         time.Time
	Patient           domain.Patient
	Advice            domain.Advice
	RemainingBudgetMg float64
	// RemainingTime is set only for a too-early check-in.
	RemainingTime *dosing.FormattedRemainingTime
}

type RecordDosageRequest struct {
	AmountMg float64
	// TakenAt overrides the session's virtual clock when set.
	TakenAt *time.Time
}

type RecordDosageResponse struct {
	Intake        domain.DoseIntake
	RemainingTime dosing.FormattedRemainingTime
}

type StatusResponse struct {
	Patient           domain.Patient
	Now               time.Time
	TotalLast24hMg    float64
	RemainingBudgetMg float64
	// NextAllowedIntake is nil when no intake has been recorded.
	NextAllowedIntake *dosing.FormattedRemainingTime
	Intakes           []domain.DoseIntake
	RecentCheckIns    []*domain.CheckInRecord
}
