package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/dosewise/internal/domain"
)

// ErrNotFound is wrapped by every repository lookup that finds no row.
var ErrNotFound = errors.New("not found")

type PatientRepo interface {
	Get(ctx context.Context) (*domain.Patient, error)
	// Save replaces the stored patient, including the full diagnosis set.
	Save(ctx context.Context, p domain.Patient) error
}

type IntakeRepo interface {
	Create(ctx context.Context, in *domain.DoseIntake) error
	// List returns all intakes ordered by time of intake.
	List(ctx context.Context) ([]domain.DoseIntake, error)
	ListSince(ctx context.Context, since time.Time) ([]domain.DoseIntake, error)
	DeleteAll(ctx context.Context) error
}

// ClockRepo persists the session's virtual clock.
type ClockRepo interface {
	Get(ctx context.Context) (time.Time, error)
	Set(ctx context.Context, now time.Time) error
}

type CheckInLogRepo interface {
	Create(ctx context.Context, rec *domain.CheckInRecord) error
	ListRecent(ctx context.Context, limit int) ([]*domain.CheckInRecord, error)
	DeleteAll(ctx context.Context) error
}
