package dosing

import (
	"time"

	"github.com/alexanderramin/dosewise/internal/domain"
)

// DosageRules are the evaluators a DosageCalculator composes.
type DosageRules struct {
	IsAgeEligible      func(age int) bool
	RemainingDose      func(now time.Time, history []domain.DoseIntake) float64
	HasSevereCondition func(ds domain.DiagnosisSet) bool
	LimitedDose        func(limit, remaining float64) domain.ExactDose
	RangeDose          func(minimum, maximum, remaining float64) domain.DoseSuggestion
}

func DefaultDosageRules() DosageRules {
	return DosageRules{
		IsAgeEligible:      IsAgeEligible,
		RemainingDose:      RemainingDose,
		HasSevereCondition: HasSevereCondition,
		LimitedDose:        LimitedDose,
		RangeDose:          RangeDose,
	}
}

// DosageCalculator picks a dose for a patient given their intake history.
type DosageCalculator struct {
	rules DosageRules
}

// NewDosageCalculator builds a calculator. Nil rules fall back to defaults.
func NewDosageCalculator(rules DosageRules) *DosageCalculator {
	def := DefaultDosageRules()
	if rules.IsAgeEligible == nil {
		rules.IsAgeEligible = def.IsAgeEligible
	}
	if rules.RemainingDose == nil {
		rules.RemainingDose = def.RemainingDose
	}
	if rules.HasSevereCondition == nil {
		rules.HasSevereCondition = def.HasSevereCondition
	}
	if rules.LimitedDose == nil {
		rules.LimitedDose = def.LimitedDose
	}
	if rules.RangeDose == nil {
		rules.RangeDose = def.RangeDose
	}
	return &DosageCalculator{rules: rules}
}

// Calculate evaluates, in order: age eligibility, the remaining 24h budget,
// then the dose policy for the patient's age band and condition.
func (c *DosageCalculator) Calculate(patient domain.Patient, history []domain.DoseIntake, now time.Time) domain.DosageCalculationResult {
	if !c.rules.IsAgeEligible(patient.Age) {
		return domain.DosageAgeNotSupported{}
	}
	remaining := c.rules.RemainingDose(now, history)
	if remaining == 0 {
		return domain.DosageMaxLimitReached{}
	}

	var suggestion domain.DoseSuggestion
	switch {
	case (patient.Age >= 10 && patient.Age <= 11) || c.rules.HasSevereCondition(patient.Diagnoses):
		suggestion = c.rules.LimitedDose(ChildDoseLimitMg, remaining)
	case patient.Age == 12:
		suggestion = c.rules.LimitedDose(PreteenDoseLimitMg, remaining)
	default:
		suggestion = c.rules.RangeDose(AdultMinimumDoseMg, AdultMaximumDoseMg, remaining)
	}
	return domain.DosageTakeDose{Suggestion: suggestion}
}
