package dosing

import (
	"math"

	"github.com/alexanderramin/dosewise/internal/domain"
)

// LimitedDose suggests exactly min(remaining, limit) mg.
func LimitedDose(limit, remaining float64) domain.ExactDose {
	return domain.ExactDose{Dosage: domain.Milligrams(math.Min(remaining, limit))}
}

// RangeDose suggests minimum..min(remaining, maximum) mg. When the budget
// cannot cover more than the minimum it falls back to an exact dose of what
// is left.
func RangeDose(minimum, maximum, remaining float64) domain.DoseSuggestion {
	if remaining <= minimum {
		return LimitedDose(minimum, remaining)
	}
	return domain.DoseRange{
		Minimum: domain.Milligrams(minimum),
		Maximum: domain.Milligrams(math.Min(remaining, maximum)),
	}
}
