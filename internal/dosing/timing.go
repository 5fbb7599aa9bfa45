package dosing

import (
	"time"

	"github.com/alexanderramin/dosewise/internal/domain"
)

// IsCheckInTooEarly reports whether fewer than CheckInInterval whole hours
// have passed since the latest intake. Exactly four hours is not too early.
func IsCheckInTooEarly(checkInTime time.Time, history []domain.DoseIntake) bool {
	latest, ok := LatestIntake(history)
	if !ok {
		return false
	}
	hours := int64(checkInTime.Sub(latest.TimeOfIntake) / time.Hour)
	return hours < int64(CheckInInterval/time.Hour)
}
