package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/dosewise/internal/db"
	"github.com/alexanderramin/dosewise/internal/domain"
	"github.com/alexanderramin/dosewise/internal/dosing"
	"github.com/alexanderramin/dosewise/internal/repository"
	"github.com/alexanderramin/dosewise/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testDefaults = SessionDefaults{PatientName: "Patient", PatientAge: 40}

type testSession struct {
	db       *sql.DB
	uow      db.UnitOfWork
	patients repository.PatientRepo
	intakes  repository.IntakeRepo
	clock    repository.ClockRepo
	checkIns repository.CheckInLogRepo
}

// setupSession returns a seeded session whose virtual clock reads testutil.Now.
func setupSession(t *testing.T) testSession {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	clockSvc := NewClockService(uow, testDefaults, dosing.FixedClock(testutil.Now))
	require.NoError(t, clockSvc.EnsureInitialized(context.Background()))

	return testSession{
		db:       database,
		uow:      uow,
		patients: repository.NewSQLitePatientRepo(database),
		intakes:  repository.NewSQLiteIntakeRepo(database),
		clock:    repository.NewSQLiteClockRepo(database),
		checkIns: repository.NewSQLiteCheckInLogRepo(database),
	}
}

func (s testSession) savePatient(t *testing.T, p domain.Patient) {
	t.Helper()
	require.NoError(t, s.patients.Save(context.Background(), p))
}

func (s testSession) addIntake(t *testing.T, amount float64, ago time.Duration) {
	t.Helper()
	require.NoError(t, s.intakes.Create(context.Background(), testutil.NewTestIntake(amount, ago)))
}

type stubFormatter struct{}

func (stubFormatter) FormatInstant(t time.Time) string      { return t.Format(time.RFC3339) }
func (stubFormatter) FormatDuration(d time.Duration) string { return d.String() }

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.events, "expected at least one use-case event")
	return o.events[len(o.events)-1]
}
