package testutil

import (
	"time"

	"github.com/alexanderramin/dosewise/internal/domain"
	"github.com/google/uuid"
)

// Now is a fixed reference instant shared by tests.
var Now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// Patient options
type PatientOption func(*domain.Patient)

func WithAge(age int) PatientOption {
	return func(p *domain.Patient) {
		p.Age = age
	}
}

func WithDiagnoses(ds ...domain.Diagnosis) PatientOption {
	return func(p *domain.Patient) {
		p.Diagnoses = domain.NewDiagnosisSet(ds...)
	}
}

func NewTestPatient(opts ...PatientOption) domain.Patient {
	p := domain.Patient{
		Name:      "Patient",
		Age:       40,
		Diagnoses: domain.NewDiagnosisSet(),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Intake options
type IntakeOption func(*domain.DoseIntake)

func WithIntakeID(id string) IntakeOption {
	return func(in *domain.DoseIntake) {
		in.ID = id
	}
}

// NewTestIntake creates a paracetamol intake of amount mg taken ago before Now.
func NewTestIntake(amount float64, ago time.Duration, opts ...IntakeOption) *domain.DoseIntake {
	in := domain.NewParacetamolIntake(amount, Now.Add(-ago))
	in.ID = uuid.New().String()
	for _, opt := range opts {
		opt(&in)
	}
	return &in
}
