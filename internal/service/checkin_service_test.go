package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/dosewise/internal/contract"
	"github.com/alexanderramin/dosewise/internal/domain"
	"github.com/alexanderramin/dosewise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIn_LowTemperature_NoTreatmentNeeded(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()
	svc := NewCheckInService(s.uow, nil, stubFormatter{})

	resp, err := svc.CheckIn(ctx, contract.NewCheckInRequest(37.2))
	require.NoError(t, err)

	assert.Equal(t, domain.NoTreatmentNeeded{}, resp.Advice)
	assert.Equal(t, testutil.Now, resp.CheckedAt)
	assert.Nil(t, resp.RemainingTime)
	assert.Equal(t, 4000.0, resp.RemainingBudgetMg)
}

func TestCheckIn_FeverAdult_SuggestsRange(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()
	svc := NewCheckInService(s.uow, nil, stubFormatter{})

	resp, err := svc.CheckIn(ctx, contract.NewCheckInRequest(39))
	require.NoError(t, err)

	require.IsType(t, domain.TakeDose{}, resp.Advice)
	lo, hi := resp.Advice.(domain.TakeDose).Suggestion.Bounds()
	assert.Equal(t, 500.0, lo.Amount)
	assert.Equal(t, 1000.0, hi.Amount)

	recent, err := s.checkIns.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, domain.AdviceTakeDose, recent[0].Advice)
	require.NotNil(t, recent[0].MinimumMg)
	require.NotNil(t, recent[0].MaximumMg)
	assert.Equal(t, 500.0, *recent[0].MinimumMg)
	assert.Equal(t, 1000.0, *recent[0].MaximumMg)
	assert.Equal(t, 39.0, recent[0].Temperature.Value)
}

func TestCheckIn_SevereDiagnosis_LimitsDose(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()
	s.savePatient(t, testutil.NewTestPatient(testutil.WithDiagnoses(domain.Dehydration(domain.SeveritySevere))))
	svc := NewCheckInService(s.uow, nil, stubFormatter{})

	resp, err := svc.CheckIn(ctx, contract.NewCheckInRequest(39))
	require.NoError(t, err)

	assert.Equal(t, domain.TakeDose{Suggestion: domain.ExactDose{Dosage: domain.Milligrams(500)}}, resp.Advice)
}

func TestCheckIn_TooEarly_AttachesRemainingTime(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()
	s.addIntake(t, 1000, 90*time.Minute)
	svc := NewCheckInService(s.uow, nil, stubFormatter{})

	resp, err := svc.CheckIn(ctx, contract.NewCheckInRequest(39))
	require.NoError(t, err)

	assert.Equal(t, domain.TooEarlyCheckIn{}, resp.Advice)
	require.NotNil(t, resp.RemainingTime)
	assert.Equal(t, 150*time.Minute, resp.RemainingTime.Duration)
	assert.Equal(t, "2h30m0s", resp.RemainingTime.Remaining)
	assert.Equal(t, testutil.Now.Add(150*time.Minute).Format(time.RFC3339), resp.RemainingTime.Until)
	assert.Equal(t, 3000.0, resp.RemainingBudgetMg)
}

func TestCheckIn_HighTemperatureBeatsTooEarly(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()
	s.addIntake(t, 1000, time.Hour)
	svc := NewCheckInService(s.uow, nil, stubFormatter{})

	resp, err := svc.CheckIn(ctx, contract.NewCheckInRequest(40))
	require.NoError(t, err)

	assert.Equal(t, domain.SeekMedicalAttention{}, resp.Advice)
	assert.Nil(t, resp.RemainingTime)
}

func TestCheckIn_FeelingBetter_StopTreatment(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()
	svc := NewCheckInService(s.uow, nil, stubFormatter{})

	req := contract.NewCheckInRequest(38.5)
	req.FeelingBetter = true
	resp, err := svc.CheckIn(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, domain.StopTreatment{}, resp.Advice)
}

func TestCheckIn_ExplicitNowOverridesVirtualClock(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()
	s.addIntake(t, 1000, time.Hour)
	svc := NewCheckInService(s.uow, nil, stubFormatter{})

	later := testutil.Now.Add(3 * time.Hour)
	req := contract.NewCheckInRequest(39)
	req.Now = &later
	resp, err := svc.CheckIn(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, later, resp.CheckedAt)
	assert.IsType(t, domain.TakeDose{}, resp.Advice, "four hours after the intake the check-in is on time")
}

func TestCheckIn_DailyLimitReached(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()
	for _, ago := range []time.Duration{5 * time.Hour, 10 * time.Hour, 15 * time.Hour, 20 * time.Hour} {
		s.addIntake(t, 1000, ago)
	}
	svc := NewCheckInService(s.uow, nil, stubFormatter{})

	resp, err := svc.CheckIn(ctx, contract.NewCheckInRequest(39))
	require.NoError(t, err)

	assert.Equal(t, domain.MaxLimitReached{}, resp.Advice)
	assert.Equal(t, 0.0, resp.RemainingBudgetMg)
}

func TestCheckIn_InvalidTemperature(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := NewCheckInService(s.uow, nil, stubFormatter{}, obs)

	_, err := svc.CheckIn(ctx, contract.NewCheckInRequest(98.6))
	require.Error(t, err)

	var cerr *contract.Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, contract.ErrInvalidTemperature, cerr.Code)

	recent, err := s.checkIns.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent, "rejected check-ins are not logged")

	ev := obs.last(t)
	assert.Equal(t, "check_in", ev.Name)
	assert.False(t, ev.Success)
}

func TestCheckIn_ObserverSeesAdvice(t *testing.T) {
	s := setupSession(t)
	obs := &recordingObserver{}
	svc := NewCheckInService(s.uow, nil, stubFormatter{}, obs)

	_, err := svc.CheckIn(context.Background(), contract.NewCheckInRequest(36.8))
	require.NoError(t, err)

	ev := obs.last(t)
	assert.True(t, ev.Success)
	assert.Equal(t, "no_treatment_needed", ev.Fields["advice"])
	assert.Equal(t, 36.8, ev.Fields["temperature_c"])
}
