package domain

import "time"

// CheckInRecord is an audit entry for advice given at a check-in.
type CheckInRecord struct {
	ID            string
	CheckedAt     time.Time
	Temperature   Temperature
	FeelingBetter bool
	Advice        AdviceKind
	// Suggested bounds in mg; nil unless Advice is AdviceTakeDose.
	MinimumMg *float64
	MaximumMg *float64
	CreatedAt time.Time
}

// NewCheckInRecord builds a record for the advice given to data.
func NewCheckInRecord(id string, data CheckInData, advice Advice, createdAt time.Time) *CheckInRecord {
	rec := &CheckInRecord{
		ID:            id,
		CheckedAt:     data.Time,
		Temperature:   data.Temperature,
		FeelingBetter: data.FeelingBetter,
		Advice:        advice.Kind(),
		CreatedAt:     createdAt,
	}
	if td, ok := advice.(TakeDose); ok {
		lo, hi := td.Suggestion.Bounds()
		rec.MinimumMg = &lo.Amount
		rec.MaximumMg = &hi.Amount
	}
	return rec
}
