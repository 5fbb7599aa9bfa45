package dosing

import "github.com/alexanderramin/dosewise/internal/domain"

// IsAgeEligible reports whether automated advice may be given at this age.
// Ages below 10 and 13 through 15 are excluded.
func IsAgeEligible(age int) bool {
	return age >= MinimumEligibleAge && !(age >= 13 && age <= 15)
}

// HasSevereCondition reports whether the diagnoses include severe
// malnourishment or severe dehydration.
func HasSevereCondition(ds domain.DiagnosisSet) bool {
	return ds.Contains(domain.Malnourishment(domain.SeveritySevere)) ||
		ds.Contains(domain.Dehydration(domain.SeveritySevere))
}
