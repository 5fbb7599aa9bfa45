package cli

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/dosewise/internal/cli/formatter"
	"github.com/alexanderramin/dosewise/internal/contract"
	"github.com/alexanderramin/dosewise/internal/domain"
	"github.com/alexanderramin/dosewise/internal/dosing"
	"github.com/alexanderramin/dosewise/internal/service"
	"github.com/alexanderramin/dosewise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// testApp wires a full App backed by an in-memory DB. The session clock
// starts at testutil.Now.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	times := formatter.NewTimeFormatter(time.UTC)

	clock := service.NewClockService(uow,
		service.SessionDefaults{PatientName: "Patient", PatientAge: 40},
		dosing.FixedClock(testutil.Now))
	require.NoError(t, clock.EnsureInitialized(context.Background()))

	return &App{
		CheckIns: service.NewCheckInService(uow, nil, times),
		Intakes:  service.NewIntakeService(uow, times),
		Patient:  service.NewPatientService(uow),
		Clock:    clock,
		Status:   service.NewStatusService(uow, times),
		Times:    times,
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

func TestCheckInCmd_TakeDose(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "check-in", "--temp", "38.7")
	require.NoError(t, err)
	assert.Contains(t, out, "TAKE DOSE")
	assert.Contains(t, out, "Take 500mg - 1000mg of paracetamol.")
	assert.Contains(t, out, "10:00:00 15/06/2025")
}

func TestCheckInCmd_FeelingBetter(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "check-in", "--temp", "38.7", "--better")
	require.NoError(t, err)
	assert.Contains(t, out, "STOP TREATMENT")
}

func TestCheckInCmd_RequiresTempWhenNotInteractive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "check-in")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--temp is required")
}

func TestCheckInCmd_RejectsImplausibleTemperature(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "check-in", "--temp", "100")
	var cerr *contract.Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, contract.ErrInvalidTemperature, cerr.Code)
}

func TestDoseRecordThenCheckIn_TooEarly(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "dose", "record", "--amount", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded 1000mg paracetamol at 10:00:00 15/06/2025")
	assert.Contains(t, out, "Next check-in in 04:00, at 14:00:00 15/06/2025")

	_, err = executeCmd(t, app, "clock", "advance", "--minutes", "90")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "check-in", "--temp", "39")
	require.NoError(t, err)
	assert.Contains(t, out, "TOO EARLY")
	assert.Contains(t, out, "Wait 02:30, until 14:00:00 15/06/2025.")
}

func TestDoseList_WindowAndAll(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	old := testutil.Now.Add(-30 * time.Hour)
	_, err := app.Intakes.RecordDosage(ctx, contract.RecordDosageRequest{AmountMg: 750, TakenAt: &old})
	require.NoError(t, err)
	_, err = app.Intakes.RecordDosage(ctx, contract.RecordDosageRequest{AmountMg: 500})
	require.NoError(t, err)

	out, err := executeCmd(t, app, "dose", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "500mg")
	assert.NotContains(t, out, "750mg")

	out, err = executeCmd(t, app, "dose", "list", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "750mg")
	assert.Contains(t, out, "1d 6h ago")
}

func TestDoseList_Empty(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "dose", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No intakes recorded.")
}

func TestPatientCmds(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "patient", "set-age", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "Age set to 12.")

	out, err = executeCmd(t, app, "patient", "add-diagnosis", "--diagnosis", "dehydration:severe")
	require.NoError(t, err)
	assert.Contains(t, out, "Added dehydration (severe).")

	out, err = executeCmd(t, app, "patient", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "dehydration:severe")

	out, err = executeCmd(t, app, "check-in", "--temp", "39")
	require.NoError(t, err)
	assert.Contains(t, out, "Take 500mg of paracetamol.")

	_, err = executeCmd(t, app, "patient", "remove-diagnosis", "--diagnosis", "dehydration:severe")
	require.NoError(t, err)
	p, err := app.Patient.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, p.Diagnoses)
}

func TestPatientCmds_InvalidInput(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "patient", "set-age", "ten")
	require.Error(t, err)

	_, err = executeCmd(t, app, "patient", "add-diagnosis", "--diagnosis", "flu:mild")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown diagnosis kind")

	_, err = executeCmd(t, app, "patient", "add-diagnosis")
	require.Error(t, err)
}

func TestClockCmds(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "clock", "show")
	require.NoError(t, err)
	assert.Equal(t, "10:00:00 15/06/2025\n", out)

	out, err = executeCmd(t, app, "clock", "advance", "--minutes", "45")
	require.NoError(t, err)
	assert.Contains(t, out, "10:45:00 15/06/2025")

	_, err = executeCmd(t, app, "clock", "advance", "--minutes", "-5")
	var cerr *contract.Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, contract.ErrInvalidDuration, cerr.Code)
}

func TestClockReset_ClearsSession(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	_, err := app.Patient.SetAge(ctx, 11)
	require.NoError(t, err)
	_, err = app.Intakes.RecordDosage(ctx, contract.RecordDosageRequest{AmountMg: 500})
	require.NoError(t, err)

	out, err := executeCmd(t, app, "clock", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Session reset.")

	p, err := app.Patient.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Patient{Name: "Patient", Age: 40, Diagnoses: domain.NewDiagnosisSet()}, *p)

	history, err := app.Intakes.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestStatusCmd(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "dose", "record", "--amount", "1000")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "check-in", "--temp", "38.9")
	require.NoError(t, err)

	out, err := executeCmd(t, app, "status", "--history")
	require.NoError(t, err)
	assert.Contains(t, out, "1000mg / 4000mg")
	assert.Contains(t, out, "in 04:00, at 14:00:00 15/06/2025")
	assert.Contains(t, out, "38.9°C")
	assert.Contains(t, out, "TOO EARLY")
	assert.Contains(t, out, "1000mg at 10:00:00 15/06/2025")
}

func TestDashboardCmd_RequiresTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "dashboard")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestDiagnosisValue(t *testing.T) {
	var v diagnosisValue
	assert.Equal(t, "", v.String())
	require.NoError(t, v.Set("Malnourishment:Moderate"))
	assert.Equal(t, "malnourishment:moderate", v.String())
	assert.Equal(t, domain.Malnourishment(domain.SeverityModerate), v.d)
	assert.Error(t, v.Set("malnourishment"))
}

func TestParseDecimal(t *testing.T) {
	v, err := parseDecimal(" 38,5 ")
	require.NoError(t, err)
	assert.Equal(t, 38.5, v)

	assert.NoError(t, validateTemperatureInput("37"))
	assert.Error(t, validateTemperatureInput("warm"))
	assert.Error(t, validatePositiveFloat("0"))
	assert.NoError(t, validatePositiveFloat("500"))
}
