package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/dosewise/internal/contract"
	"github.com/alexanderramin/dosewise/internal/db"
	"github.com/alexanderramin/dosewise/internal/dosing"
	"github.com/alexanderramin/dosewise/internal/repository"
)

type clockService struct {
	uow      db.UnitOfWork
	defaults SessionDefaults
	wall     dosing.Clock
	observer UseCaseObserver
}

// NewClockService manages the session's virtual clock. wall supplies the
// instant a fresh or reset session starts at; nil means the system clock.
func NewClockService(uow db.UnitOfWork, defaults SessionDefaults, wall dosing.Clock, observers ...UseCaseObserver) ClockService {
	if wall == nil {
		wall = dosing.SystemClock{}
	}
	return &clockService{
		uow:      uow,
		defaults: defaults,
		wall:     wall,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *clockService) Now(ctx context.Context) (time.Time, error) {
	var now time.Time
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		now, err = newSessionRepos(tx).clock.Get(ctx)
		return err
	})
	return now, err
}

func (s *clockService) AdvanceBy(ctx context.Context, d time.Duration) (now time.Time, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"minutes": d.Minutes()}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "advance_clock",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if d < 0 {
		return time.Time{}, contract.Errorf(contract.ErrInvalidDuration, "cannot move the clock backwards by %s", -d)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		clock := newSessionRepos(tx).clock
		current, err := clock.Get(ctx)
		if err != nil {
			return err
		}
		now = current.Add(d)
		return clock.Set(ctx, now)
	})
	if err != nil {
		return time.Time{}, err
	}
	return now, nil
}

func (s *clockService) Reset(ctx context.Context) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "reset_session",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newSessionRepos(tx)
		if err := repos.patients.Save(ctx, s.defaults.patient()); err != nil {
			return err
		}
		if err := repos.intakes.DeleteAll(ctx); err != nil {
			return err
		}
		if err := repos.checkIns.DeleteAll(ctx); err != nil {
			return err
		}
		return repos.clock.Set(ctx, s.wall.Now())
	})
}

func (s *clockService) EnsureInitialized(ctx context.Context) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newSessionRepos(tx)

		if _, err := repos.patients.Get(ctx); err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			if err := repos.patients.Save(ctx, s.defaults.patient()); err != nil {
				return fmt.Errorf("seeding patient: %w", err)
			}
		}

		if _, err := repos.clock.Get(ctx); err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return err
			}
			if err := repos.clock.Set(ctx, s.wall.Now()); err != nil {
				return fmt.Errorf("seeding clock: %w", err)
			}
		}
		return nil
	})
}
