package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/dosewise/internal/teatest"
	"github.com/alexanderramin/dosewise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDashboard(t *testing.T) *teatest.Driver {
	t.Helper()
	return teatest.New(t, newDashboardModel(context.Background(), testApp(t)), teatest.WithSize(100, 40))
}

func dashboardState(t *testing.T, d *teatest.Driver) dashboardModel {
	t.Helper()
	m, ok := d.Model.(dashboardModel)
	require.True(t, ok)
	return m
}

func TestDashboard_InitialStatus(t *testing.T) {
	d := newTestDashboard(t)
	m := dashboardState(t, d)

	require.NotNil(t, m.status)
	assert.Equal(t, testutil.Now, m.status.Now)
	view := stripANSI(d.View())
	assert.Contains(t, view, "0mg / 4000mg")
	assert.Contains(t, view, "check in")
}

func TestDashboard_CheckInFlow(t *testing.T) {
	d := newTestDashboard(t)

	d.PressKey('c')
	assert.Equal(t, promptTemperature, dashboardState(t, d).prompt)

	d.Type("38.8")
	d.PressEnter()

	m := dashboardState(t, d)
	assert.Equal(t, promptNone, m.prompt)
	require.NoError(t, m.err)
	assert.Equal(t, "Take 500mg - 1000mg of paracetamol.", m.message)
	require.Len(t, m.status.RecentCheckIns, 1)
}

func TestDashboard_RecordAdvanceAndReset(t *testing.T) {
	d := newTestDashboard(t)

	d.PressKey('d')
	d.Type("1000")
	d.PressEnter()
	m := dashboardState(t, d)
	require.NoError(t, m.err)
	assert.Contains(t, m.message, "Next check-in in 04:00")
	assert.Equal(t, 1000.0, m.status.TotalLast24hMg)

	d.PressKey('a')
	m = dashboardState(t, d)
	assert.Equal(t, "Clock is now 10:30:00 15/06/2025.", m.message)
	assert.Equal(t, testutil.Now.Add(dashboardAdvanceStep), m.status.Now)

	d.PressKey('R')
	m = dashboardState(t, d)
	assert.Equal(t, "Session reset.", m.message)
	assert.Empty(t, m.status.Intakes)
}

func TestDashboard_FeelingBetterToggle(t *testing.T) {
	d := newTestDashboard(t)

	d.PressKey('b')
	assert.True(t, dashboardState(t, d).feelingBetter)
	assert.Contains(t, stripANSI(d.View()), "Feeling better: yes")

	d.PressKey('c')
	d.Type("38.5")
	d.PressEnter()
	assert.Equal(t, "Glad you feel better. You can stop the treatment.", dashboardState(t, d).message)
}

func TestDashboard_InvalidInputAndCancel(t *testing.T) {
	d := newTestDashboard(t)

	d.PressKey('c')
	d.Type("hot")
	d.PressEnter()
	m := dashboardState(t, d)
	assert.Error(t, m.err)
	assert.Equal(t, promptTemperature, m.prompt, "prompt stays open on bad input")

	d.PressEsc()
	assert.Equal(t, promptNone, dashboardState(t, d).prompt)
}

func TestDashboard_ServiceErrorShown(t *testing.T) {
	d := newTestDashboard(t)

	d.PressKey('c')
	d.Type("50")
	d.PressEnter()

	assert.Contains(t, stripANSI(d.View()), "INVALID_TEMPERATURE")
}

func TestDashboard_Quit(t *testing.T) {
	d := newTestDashboard(t)

	d.PressKey('q')
	assert.True(t, d.Quitting)
	assert.Equal(t, "", d.View())
}
