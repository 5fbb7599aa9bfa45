package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/dosewise/internal/contract"
	"github.com/alexanderramin/dosewise/internal/domain"
	"github.com/alexanderramin/dosewise/internal/dosing"
	"github.com/alexanderramin/dosewise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock_AdvanceBy(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()
	svc := NewClockService(s.uow, testDefaults, dosing.FixedClock(testutil.Now))

	now, err := svc.AdvanceBy(ctx, 90*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, testutil.Now.Add(90*time.Minute), now)

	got, err := svc.Now(ctx)
	require.NoError(t, err)
	assert.Equal(t, now, got)
}

func TestClock_AdvanceBy_Negative(t *testing.T) {
	s := setupSession(t)
	obs := &recordingObserver{}
	svc := NewClockService(s.uow, testDefaults, dosing.FixedClock(testutil.Now), obs)

	_, err := svc.AdvanceBy(context.Background(), -time.Minute)
	var cerr *contract.Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, contract.ErrInvalidDuration, cerr.Code)
	assert.False(t, obs.last(t).Success)
}

func TestClock_Reset_RestoresDefaults(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()
	s.savePatient(t, testutil.NewTestPatient(
		testutil.WithAge(11),
		testutil.WithDiagnoses(domain.Dehydration(domain.SeveritySevere)),
	))
	s.addIntake(t, 500, time.Hour)
	_, err := NewCheckInService(s.uow, nil, stubFormatter{}).CheckIn(ctx, contract.NewCheckInRequest(37))
	require.NoError(t, err)

	wall := testutil.Now.Add(72 * time.Hour)
	svc := NewClockService(s.uow, testDefaults, dosing.FixedClock(wall))
	require.NoError(t, svc.Reset(ctx))

	p, err := s.patients.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40, p.Age)
	assert.Empty(t, p.Diagnoses)

	history, err := s.intakes.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)

	recent, err := s.checkIns.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, recent)

	now, err := s.clock.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, wall, now)
}

func TestClock_Reset_RollsBackOnFailure(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()
	s.addIntake(t, 500, time.Hour)

	// Exec #1 upserts the patient, #2 clears diagnoses, #3 deletes intakes,
	// #4 deletes check-ins and #5 sets the clock.
	failUoW := &testutil.FailOnNthExecUoW{
		DB:     s.db,
		FailOn: 5,
		Err:    fmt.Errorf("injected clock failure"),
	}
	svc := NewClockService(failUoW, testDefaults, dosing.FixedClock(testutil.Now.Add(time.Hour)))

	err := svc.Reset(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected clock failure")

	history, err := s.intakes.List(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 1, "intakes survive a failed reset")

	now, err := s.clock.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, testutil.Now, now)
}

func TestClock_EnsureInitialized_KeepsExistingSession(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()
	s.savePatient(t, testutil.NewTestPatient(testutil.WithAge(12)))

	svc := NewClockService(s.uow, testDefaults, dosing.FixedClock(testutil.Now.Add(time.Hour)))
	require.NoError(t, svc.EnsureInitialized(ctx))

	p, err := s.patients.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, p.Age)

	now, err := s.clock.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, testutil.Now, now)
}
