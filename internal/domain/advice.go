package domain

// DoseSuggestion is either an ExactDose or a DoseRange.
type DoseSuggestion interface {
	// Bounds returns the smallest and largest amount covered by the suggestion.
	// For an ExactDose both are the same dosage.
	Bounds() (minimum, maximum Dosage)
	isDoseSuggestion()
}

type ExactDose struct {
	Dosage Dosage
}

func (d ExactDose) Bounds() (Dosage, Dosage) { return d.Dosage, d.Dosage }
func (ExactDose) isDoseSuggestion()          {}

// DoseRange suggests any amount between Minimum and Maximum inclusive.
// Minimum <= Maximum and both share a unit.
type DoseRange struct {
	Minimum Dosage
	Maximum Dosage
}

func (d DoseRange) Bounds() (Dosage, Dosage) { return d.Minimum, d.Maximum }
func (DoseRange) isDoseSuggestion()          {}

// DosageCalculationResult is the outcome of dosage calculation for a patient.
type DosageCalculationResult interface {
	isDosageCalculationResult()
}

type DosageAgeNotSupported struct{}

type DosageMaxLimitReached struct{}

type DosageTakeDose struct {
	Suggestion DoseSuggestion
}

func (DosageAgeNotSupported) isDosageCalculationResult() {}
func (DosageMaxLimitReached) isDosageCalculationResult() {}
func (DosageTakeDose) isDosageCalculationResult()        {}

type AdviceKind string

const (
	AdviceNoTreatmentNeeded    AdviceKind = "no_treatment_needed"
	AdviceStopTreatment        AdviceKind = "stop_treatment"
	AdviceSeekMedicalAttention AdviceKind = "seek_medical_attention"
	AdviceMaxLimitReached      AdviceKind = "max_limit_reached"
	AdviceTooEarlyCheckIn      AdviceKind = "too_early_check_in"
	AdviceTakeDose             AdviceKind = "take_dose"
)

// Advice is the single outcome of a check-in.
type Advice interface {
	Kind() AdviceKind
	isAdvice()
}

type NoTreatmentNeeded struct{}

type StopTreatment struct{}

type SeekMedicalAttention struct{}

type MaxLimitReached struct{}

type TooEarlyCheckIn struct{}

type TakeDose struct {
	Suggestion DoseSuggestion
}

func (NoTreatmentNeeded) Kind() AdviceKind    { return AdviceNoTreatmentNeeded }
func (StopTreatment) Kind() AdviceKind        { return AdviceStopTreatment }
func (SeekMedicalAttention) Kind() AdviceKind { return AdviceSeekMedicalAttention }
func (MaxLimitReached) Kind() AdviceKind      { return AdviceMaxLimitReached }
func (TooEarlyCheckIn) Kind() AdviceKind      { return AdviceTooEarlyCheckIn }
func (TakeDose) Kind() AdviceKind             { return AdviceTakeDose }

func (NoTreatmentNeeded) isAdvice()    {}
func (StopTreatment) isAdvice()        {}
func (SeekMedicalAttention) isAdvice() {}
func (MaxLimitReached) isAdvice()      {}
func (TooEarlyCheckIn) isAdvice()      {}
func (TakeDose) isAdvice()             {}
