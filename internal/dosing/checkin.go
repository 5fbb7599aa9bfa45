package dosing

import (
	"fmt"
	"time"

	"github.com/alexanderramin/dosewise/internal/domain"
)

// CheckInRules are the evaluators a CheckInAdvisor composes.
type CheckInRules struct {
	IsHighTemperature func(t domain.Temperature) bool
	IsLowTemperature  func(t domain.Temperature) bool
	IsCheckInTooEarly func(checkInTime time.Time, history []domain.DoseIntake) bool
	CalculateDosage   func(patient domain.Patient, history []domain.DoseIntake, now time.Time) domain.DosageCalculationResult
}

func DefaultCheckInRules() CheckInRules {
	return CheckInRules{
		IsHighTemperature: IsHighTemperature,
		IsLowTemperature:  IsLowTemperature,
		IsCheckInTooEarly: IsCheckInTooEarly,
		CalculateDosage:   NewDosageCalculator(DefaultDosageRules()).Calculate,
	}
}

// CheckInAdvisor turns a check-in into exactly one Advice.
type CheckInAdvisor struct {
	rules CheckInRules
}

// NewCheckInAdvisor builds an advisor. Nil rules fall back to defaults.
func NewCheckInAdvisor(rules CheckInRules) *CheckInAdvisor {
	def := DefaultCheckInRules()
	if rules.IsHighTemperature == nil {
		rules.IsHighTemperature = def.IsHighTemperature
	}
	if rules.IsLowTemperature == nil {
		rules.IsLowTemperature = def.IsLowTemperature
	}
	if rules.IsCheckInTooEarly == nil {
		rules.IsCheckInTooEarly = def.IsCheckInTooEarly
	}
	if rules.CalculateDosage == nil {
		rules.CalculateDosage = def.CalculateDosage
	}
	return &CheckInAdvisor{rules: rules}
}

// Advise applies the rules in priority order; the first match wins and no
// later rule is evaluated.
func (a *CheckInAdvisor) Advise(patient domain.Patient, history []domain.DoseIntake, data domain.CheckInData, now time.Time) domain.Advice {
	switch {
	case a.rules.IsHighTemperature(data.Temperature):
		return domain.SeekMedicalAttention{}
	case data.FeelingBetter:
		return domain.StopTreatment{}
	case a.rules.IsLowTemperature(data.Temperature):
		return domain.NoTreatmentNeeded{}
	case a.rules.IsCheckInTooEarly(data.Time, history):
		return domain.TooEarlyCheckIn{}
	}

	switch res := a.rules.CalculateDosage(patient, history, now).(type) {
	case domain.DosageAgeNotSupported:
		return domain.SeekMedicalAttention{}
	case domain.DosageMaxLimitReached:
		return domain.MaxLimitReached{}
	case domain.DosageTakeDose:
		return domain.TakeDose{Suggestion: res.Suggestion}
	default:
		panic(fmt.Sprintf("dosing: unhandled dosage result %T", res))
	}
}
