package service

import (
	"context"
	"time"

	"github.com/alexanderramin/dosewise/internal/db"
	"github.com/alexanderramin/dosewise/internal/domain"
)

type patientService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewPatientService(uow db.UnitOfWork, observers ...UseCaseObserver) PatientService {
	return &patientService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *patientService) Get(ctx context.Context) (*domain.Patient, error) {
	var out *domain.Patient
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		out, err = newSessionRepos(tx).patients.Get(ctx)
		return err
	})
	return out, err
}

func (s *patientService) SetAge(ctx context.Context, age int) (*domain.Patient, error) {
	if err := validateAge(age); err != nil {
		return nil, err
	}
	return s.update(ctx, "set_patient_age", map[string]any{"age": age}, func(p domain.Patient) domain.Patient {
		return p.WithAge(age)
	})
}

func (s *patientService) AddDiagnosis(ctx context.Context, d domain.Diagnosis) (*domain.Patient, error) {
	if err := validateDiagnosis(d); err != nil {
		return nil, err
	}
	return s.update(ctx, "add_diagnosis", map[string]any{"diagnosis": d.String()}, func(p domain.Patient) domain.Patient {
		return p.WithDiagnoses(p.Diagnoses.With(d))
	})
}

// RemoveDiagnosis is a no-op when the patient does not have d.
func (s *patientService) RemoveDiagnosis(ctx context.Context, d domain.Diagnosis) (*domain.Patient, error) {
	if err := validateDiagnosis(d); err != nil {
		return nil, err
	}
	return s.update(ctx, "remove_diagnosis", map[string]any{"diagnosis": d.String()}, func(p domain.Patient) domain.Patient {
		return p.WithDiagnoses(p.Diagnoses.Without(d))
	})
}

func (s *patientService) update(ctx context.Context, name string, fields map[string]any, change func(domain.Patient) domain.Patient) (out *domain.Patient, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		patients := newSessionRepos(tx).patients
		current, err := patients.Get(ctx)
		if err != nil {
			return err
		}
		updated := change(*current)
		if err := patients.Save(ctx, updated); err != nil {
			return err
		}
		out = &updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
