// Package dosing decides what a patient should do at a check-in and how much
// paracetamol they may take. Everything here is pure: callers supply the
// patient, the intake history and the current time.
package dosing

import "time"

const (
	// HighTemperatureCelsius and above means the patient should see a doctor.
	HighTemperatureCelsius = 40.0
	// LowTemperatureCelsius and below needs no treatment.
	LowTemperatureCelsius = 38.0

	MinimumEligibleAge = 10

	// MaxDailyDoseMg is the ceiling over any trailing DoseWindow.
	MaxDailyDoseMg = 4000.0
	DoseWindow     = 24 * time.Hour

	// CheckInInterval is the minimum gap between an intake and the next
	// dosing check-in.
	CheckInInterval = 4 * time.Hour

	ChildDoseLimitMg   = 500.0
	PreteenDoseLimitMg = 625.0
	AdultMinimumDoseMg = 500.0
	AdultMaximumDoseMg = 1000.0
)
