package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/dosewise/internal/contract"
	"github.com/alexanderramin/dosewise/internal/db"
	"github.com/alexanderramin/dosewise/internal/domain"
	"github.com/alexanderramin/dosewise/internal/dosing"
	"github.com/google/uuid"
)

type intakeService struct {
	uow       db.UnitOfWork
	formatter dosing.TimeFormatter
	observer  UseCaseObserver
}

func NewIntakeService(uow db.UnitOfWork, formatter dosing.TimeFormatter, observers ...UseCaseObserver) IntakeService {
	return &intakeService{
		uow:       uow,
		formatter: formatter,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// RecordDosage stores an oral paracetamol intake at the virtual now and
// reports how long until the next one is allowed.
func (s *intakeService) RecordDosage(ctx context.Context, req contract.RecordDosageRequest) (resp *contract.RecordDosageResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"amount_mg": req.AmountMg}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "record_dosage",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err := validateDosage(req.AmountMg); err != nil {
		return nil, err
	}

	var out *contract.RecordDosageResponse
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newSessionRepos(tx)

		var takenAt time.Time
		if req.TakenAt != nil {
			takenAt = req.TakenAt.UTC()
		} else {
			now, err := repos.clock.Get(ctx)
			if err != nil {
				return fmt.Errorf("loading clock: %w", err)
			}
			takenAt = now
		}

		intake := domain.NewParacetamolIntake(req.AmountMg, takenAt)
		intake.ID = uuid.New().String()
		if err := repos.intakes.Create(ctx, &intake); err != nil {
			return err
		}

		history, err := repos.intakes.List(ctx)
		if err != nil {
			return fmt.Errorf("loading intake history: %w", err)
		}
		rt, err := dosing.FormatRemainingTime(takenAt, history, s.formatter)
		if err != nil {
			return fmt.Errorf("computing next intake: %w", err)
		}
		out = &contract.RecordDosageResponse{Intake: intake, RemainingTime: rt}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["intake_id"] = out.Intake.ID
	return out, nil
}

func (s *intakeService) List(ctx context.Context) ([]domain.DoseIntake, error) {
	var out []domain.DoseIntake
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		out, err = newSessionRepos(tx).intakes.List(ctx)
		return err
	})
	return out, err
}

func (s *intakeService) ListWindow(ctx context.Context) ([]domain.DoseIntake, error) {
	var out []domain.DoseIntake
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newSessionRepos(tx)
		now, err := repos.clock.Get(ctx)
		if err != nil {
			return fmt.Errorf("loading clock: %w", err)
		}
		out, err = repos.intakes.ListSince(ctx, now.Add(-dosing.DoseWindow))
		return err
	})
	return out, err
}
