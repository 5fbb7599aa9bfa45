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

type checkInService struct {
	uow       db.UnitOfWork
	advisor   *dosing.CheckInAdvisor
	formatter dosing.TimeFormatter
	observer  UseCaseObserver
}

// NewCheckInService builds the check-in use case. A nil advisor uses the
// default rules.
func NewCheckInService(uow db.UnitOfWork, advisor *dosing.CheckInAdvisor, formatter dosing.TimeFormatter, observers ...UseCaseObserver) CheckInService {
	if advisor == nil {
		advisor = dosing.NewCheckInAdvisor(dosing.DefaultCheckInRules())
	}
	return &checkInService{
		uow:       uow,
		advisor:   advisor,
		formatter: formatter,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *checkInService) CheckIn(ctx context.Context, req contract.CheckInRequest) (resp *contract.CheckInResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"temperature_c":  req.TemperatureCelsius,
		"feeling_better": req.FeelingBetter,
	}
	defer func() {
		if resp != nil {
			fields["advice"] = string(resp.Advice.Kind())
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "check_in",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err := validateTemperature(req.TemperatureCelsius); err != nil {
		return nil, err
	}

	var out *contract.CheckInResponse
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newSessionRepos(tx)
		state, err := repos.load(ctx)
		if err != nil {
			return err
		}

		now := state.now
		if req.Now != nil {
			now = req.Now.UTC()
		}
		data := domain.CheckInData{
			Time:          now,
			Temperature:   domain.CelsiusTemperature(req.TemperatureCelsius),
			FeelingBetter: req.FeelingBetter,
		}
		advice := s.advisor.Advise(state.patient, state.history, data, now)

		out = &contract.CheckInResponse{
			CheckedAt:         now,
			Patient:           state.patient,
			Advice:            advice,
			RemainingBudgetMg: dosing.RemainingDose(now, state.history),
		}
		if _, ok := advice.(domain.TooEarlyCheckIn); ok {
			rt, err := dosing.FormatRemainingTime(now, state.history, s.formatter)
			if err != nil {
				return fmt.Errorf("computing next intake: %w", err)
			}
			out.RemainingTime = &rt
		}

		rec := domain.NewCheckInRecord(uuid.New().String(), data, advice, time.Now().UTC())
		return repos.checkIns.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
