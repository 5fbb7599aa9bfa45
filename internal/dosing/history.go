package dosing

import (
	"math"
	"time"

	"github.com/alexanderramin/dosewise/internal/domain"
)

// TotalInLast24Hours sums intake amounts with TimeOfIntake at or after
// now - DoseWindow. History may be in any order.
func TotalInLast24Hours(now time.Time, history []domain.DoseIntake) float64 {
	since := now.Add(-DoseWindow)
	var total float64
	for _, in := range history {
		if !in.TimeOfIntake.Before(since) {
			total += in.Administration.Dosage.Amount
		}
	}
	return total
}

// RemainingDose is how many mg may still be given in the current window.
// Never negative.
func RemainingDose(now time.Time, history []domain.DoseIntake) float64 {
	return math.Max(MaxDailyDoseMg-TotalInLast24Hours(now, history), 0)
}

// LatestIntake returns the intake with the greatest TimeOfIntake. When
// several share it, the first in slice order wins.
func LatestIntake(history []domain.DoseIntake) (domain.DoseIntake, bool) {
	if len(history) == 0 {
		return domain.DoseIntake{}, false
	}
	latest := history[0]
	for _, in := range history[1:] {
		if in.TimeOfIntake.After(latest.TimeOfIntake) {
			latest = in
		}
	}
	return latest, true
}
