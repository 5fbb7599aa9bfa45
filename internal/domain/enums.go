package domain

type SeverityLevel string

const (
	SeverityMild     SeverityLevel = "mild"
	SeverityModerate SeverityLevel = "moderate"
	SeveritySevere   SeverityLevel = "severe"
)

type DiagnosisKind string

const (
	DiagnosisMalnourishment DiagnosisKind = "malnourishment"
	DiagnosisDehydration    DiagnosisKind = "dehydration"
)

type TemperatureUnit string

const (
	Celsius TemperatureUnit = "celsius"
)

type DosageUnit string

const (
	Milligram DosageUnit = "mg"
)

type Medication string

const (
	Paracetamol Medication = "paracetamol"
)

type ApplicationMethod string

const (
	Oral ApplicationMethod = "oral"
)

// ValidSeverityLevels is the canonical set of accepted severity strings.
var ValidSeverityLevels = map[string]bool{
	"mild": true, "moderate": true, "severe": true,
}

// ValidDiagnosisKinds is the canonical set of accepted diagnosis kind strings.
var ValidDiagnosisKinds = map[string]bool{
	"malnourishment": true, "dehydration": true,
}
