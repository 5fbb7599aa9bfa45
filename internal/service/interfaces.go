package service

import (
	"context"
	"time"

	"github.com/alexanderramin/dosewise/internal/contract"
	"github.com/alexanderramin/dosewise/internal/domain"
)

type CheckInService interface {
	CheckIn(ctx context.Context, req contract.CheckInRequest) (*contract.CheckInResponse, error)
}

type IntakeService interface {
	RecordDosage(ctx context.Context, req contract.RecordDosageRequest) (*contract.RecordDosageResponse, error)
	List(ctx context.Context) ([]domain.DoseIntake, error)
	// ListWindow returns the intakes inside the dose window ending at the
	// virtual now.
	ListWindow(ctx context.Context) ([]domain.DoseIntake, error)
}

type PatientService interface {
	Get(ctx context.Context) (*domain.Patient, error)
	SetAge(ctx context.Context, age int) (*domain.Patient, error)
	AddDiagnosis(ctx context.Context, d domain.Diagnosis) (*domain.Patient, error)
	RemoveDiagnosis(ctx context.Context, d domain.Diagnosis) (*domain.Patient, error)
}

type ClockService interface {
	Now(ctx context.Context) (time.Time, error)
	AdvanceBy(ctx context.Context, d time.Duration) (time.Time, error)
	// Reset restores the default patient, clears intake and check-in history
	// and moves the virtual clock to wall-clock now.
	Reset(ctx context.Context) error
	// EnsureInitialized seeds the default patient and clock when missing.
	EnsureInitialized(ctx context.Context) error
}

type StatusService interface {
	GetStatus(ctx context.Context) (*contract.StatusResponse, error)
}
