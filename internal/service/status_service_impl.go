package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/dosewise/internal/contract"
	"github.com/alexanderramin/dosewise/internal/db"
	"github.com/alexanderramin/dosewise/internal/dosing"
)

const recentCheckInLimit = 5

type statusService struct {
	uow       db.UnitOfWork
	formatter dosing.TimeFormatter
}

func NewStatusService(uow db.UnitOfWork, formatter dosing.TimeFormatter) StatusService {
	return &statusService{uow: uow, formatter: formatter}
}

func (s *statusService) GetStatus(ctx context.Context) (*contract.StatusResponse, error) {
	var resp *contract.StatusResponse
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repos := newSessionRepos(tx)
		state, err := repos.load(ctx)
		if err != nil {
			return err
		}
		recent, err := repos.checkIns.ListRecent(ctx, recentCheckInLimit)
		if err != nil {
			return fmt.Errorf("loading recent check-ins: %w", err)
		}

		resp = &contract.StatusResponse{
			Patient:           state.patient,
			Now:               state.now,
			TotalLast24hMg:    dosing.TotalInLast24Hours(state.now, state.history),
			RemainingBudgetMg: dosing.RemainingDose(state.now, state.history),
			Intakes:           state.history,
			RecentCheckIns:    recent,
		}
		if len(state.history) > 0 {
			rt, err := dosing.FormatRemainingTime(state.now, state.history, s.formatter)
			if err != nil {
				return fmt.Errorf("computing next intake: %w", err)
			}
			resp.NextAllowedIntake = &rt
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
