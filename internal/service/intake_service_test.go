package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/alexanderramin/dosewise/internal/contract"
	"github.com/alexanderramin/dosewise/internal/domain"
	"github.com/alexanderramin/dosewise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordDosage_AtVirtualNow(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()
	svc := NewIntakeService(s.uow, stubFormatter{})

	resp, err := svc.RecordDosage(ctx, contract.RecordDosageRequest{AmountMg: 500})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Intake.ID)
	assert.Equal(t, testutil.Now, resp.Intake.TimeOfIntake)
	assert.Equal(t, domain.Paracetamol, resp.Intake.Administration.Medication)
	assert.Equal(t, domain.Oral, resp.Intake.Administration.ApplicationMethod)
	assert.Equal(t, domain.Milligrams(500), resp.Intake.Administration.Dosage)

	assert.Equal(t, 4*time.Hour, resp.RemainingTime.Duration)
	assert.Equal(t, "4h0m0s", resp.RemainingTime.Remaining)
	assert.Equal(t, testutil.Now.Add(4*time.Hour), resp.RemainingTime.Next)

	history, err := s.intakes.List(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, resp.Intake.ID, history[0].ID)
}

func TestRecordDosage_RemainingTimeUsesLatestIntake(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()
	svc := NewIntakeService(s.uow, stubFormatter{})

	// Backdated entry recorded after a newer one must not move the window back.
	earlier := testutil.Now.Add(-3 * time.Hour)
	_, err := svc.RecordDosage(ctx, contract.RecordDosageRequest{AmountMg: 500})
	require.NoError(t, err)
	resp, err := svc.RecordDosage(ctx, contract.RecordDosageRequest{AmountMg: 500, TakenAt: &earlier})
	require.NoError(t, err)

	assert.Equal(t, testutil.Now.Add(4*time.Hour), resp.RemainingTime.Next)
	assert.Equal(t, 7*time.Hour, resp.RemainingTime.Duration, "measured from the backdated intake time")
}

func TestRecordDosage_RejectsInvalidAmounts(t *testing.T) {
	s := setupSession(t)
	svc := NewIntakeService(s.uow, stubFormatter{})

	for _, amount := range []float64{0, -250, math.NaN(), math.Inf(1)} {
		t.Run(fmt.Sprint(amount), func(t *testing.T) {
			_, err := svc.RecordDosage(context.Background(), contract.RecordDosageRequest{AmountMg: amount})
			var cerr *contract.Error
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, contract.ErrInvalidDosage, cerr.Code)
		})
	}

	history, err := s.intakes.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestIntakeList_OrderedAndWindowed(t *testing.T) {
	s := setupSession(t)
	ctx := context.Background()
	s.addIntake(t, 500, 30*time.Hour)
	s.addIntake(t, 1000, 2*time.Hour)
	s.addIntake(t, 750, 24*time.Hour)
	svc := NewIntakeService(s.uow, stubFormatter{})

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 500.0, all[0].Administration.Dosage.Amount)
	assert.Equal(t, 750.0, all[1].Administration.Dosage.Amount)
	assert.Equal(t, 1000.0, all[2].Administration.Dosage.Amount)

	window, err := svc.ListWindow(ctx)
	require.NoError(t, err)
	require.Len(t, window, 2, "the 24h boundary is inclusive")
	assert.Equal(t, 750.0, window[0].Administration.Dosage.Amount)
}

func TestRecordDosage_ObserverFields(t *testing.T) {
	s := setupSession(t)
	obs := &recordingObserver{}
	svc := NewIntakeService(s.uow, stubFormatter{}, obs)

	resp, err := svc.RecordDosage(context.Background(), contract.RecordDosageRequest{AmountMg: 1000})
	require.NoError(t, err)

	ev := obs.last(t)
	assert.Equal(t, "record_dosage", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, 1000.0, ev.Fields["amount_mg"])
	assert.Equal(t, resp.Intake.ID, ev.Fields["intake_id"])
}
