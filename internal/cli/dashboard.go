package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/dosewise/internal/cli/formatter"
	"github.com/alexanderramin/dosewise/internal/contract"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const dashboardAdvanceStep = 30 * time.Minute

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive session dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("dashboard needs an interactive terminal")
			}
			_, err := tea.NewProgram(newDashboardModel(cmd.Context(), app), tea.WithAltScreen()).Run()
			return err
		},
	}
}

type dashboardKeyMap struct {
	CheckIn key.Binding
	Better  key.Binding
	Record  key.Binding
	Advance key.Binding
	Reset   key.Binding
	Quit    key.Binding
	Submit  key.Binding
	Cancel  key.Binding
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		CheckIn: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "check in")),
		Better:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "toggle feeling better")),
		Record:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "record dose")),
		Advance: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "advance 30m")),
		Reset:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CheckIn, k.Better, k.Record, k.Advance, k.Reset, k.Quit}
}

func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Submit, k.Cancel}}
}

type dashboardPrompt int

const (
	promptNone dashboardPrompt = iota
	promptTemperature
	promptAmount
)

type statusLoadedMsg struct {
	resp *contract.StatusResponse
	err  error
}

type actionDoneMsg struct {
	message string
	err     error
}

type dashboardModel struct {
	ctx  context.Context
	app  *App
	keys dashboardKeyMap
	help help.Model

	status        *contract.StatusResponse
	feelingBetter bool
	prompt        dashboardPrompt
	input         textinput.Model
	message       string
	err           error
	quitting      bool
}

func newDashboardModel(ctx context.Context, app *App) dashboardModel {
	ti := textinput.New()
	ti.CharLimit = 8
	ti.Cursor.SetMode(cursor.CursorStatic)
	return dashboardModel{
		ctx:   ctx,
		app:   app,
		keys:  newDashboardKeyMap(),
		help:  help.New(),
		input: ti,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadStatus()
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case statusLoadedMsg:
		m.status = msg.resp
		if msg.err != nil {
			m.err = msg.err
		}
		return m, nil

	case actionDoneMsg:
		m.message = msg.message
		m.err = msg.err
		return m, m.loadStatus()

	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.CheckIn):
		return m.openPrompt(promptTemperature, "38.5")
	case key.Matches(msg, m.keys.Record):
		return m.openPrompt(promptAmount, "500")
	case key.Matches(msg, m.keys.Better):
		m.feelingBetter = !m.feelingBetter
		return m, nil
	case key.Matches(msg, m.keys.Advance):
		return m, m.advance()
	case key.Matches(msg, m.keys.Reset):
		return m, m.reset()
	}
	return m, nil
}

func (m dashboardModel) openPrompt(p dashboardPrompt, placeholder string) (tea.Model, tea.Cmd) {
	m.prompt = p
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	return m, m.input.Focus()
}

func (m dashboardModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.prompt = promptNone
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		v, err := parseDecimal(m.input.Value())
		if err != nil {
			m.err = fmt.Errorf("not a number: %q", m.input.Value())
			return m, nil
		}
		p := m.prompt
		m.prompt = promptNone
		m.input.Blur()
		if p == promptTemperature {
			return m, m.checkIn(v)
		}
		return m, m.record(v)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m dashboardModel) loadStatus() tea.Cmd {
	return func() tea.Msg {
		resp, err := m.app.Status.GetStatus(m.ctx)
		return statusLoadedMsg{resp: resp, err: err}
	}
}

func (m dashboardModel) checkIn(temperature float64) tea.Cmd {
	better := m.feelingBetter
	return func() tea.Msg {
		req := contract.NewCheckInRequest(temperature)
		req.FeelingBetter = better
		resp, err := m.app.CheckIns.CheckIn(m.ctx, req)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{message: formatter.AdviceMessage(resp.Advice, resp.RemainingTime)}
	}
}

func (m dashboardModel) record(amount float64) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.app.Intakes.RecordDosage(m.ctx, contract.RecordDosageRequest{AmountMg: amount})
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{message: fmt.Sprintf("Recorded %s. Next check-in in %s, at %s.",
			formatter.FormatMg(amount), resp.RemainingTime.Remaining, resp.RemainingTime.Until)}
	}
}

func (m dashboardModel) advance() tea.Cmd {
	return func() tea.Msg {
		now, err := m.app.Clock.AdvanceBy(m.ctx, dashboardAdvanceStep)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{message: "Clock is now " + m.app.Times.FormatInstant(now) + "."}
	}
}

func (m dashboardModel) reset() tea.Cmd {
	return func() tea.Msg {
		if err := m.app.Clock.Reset(m.ctx); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{message: "Session reset."}
	}
}

func (m dashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.status != nil {
		b.WriteString(formatter.FormatStatus(m.status, m.app.Times))
		b.WriteString("\n")
	} else {
		b.WriteString(formatter.Dim("Loading…") + "\n")
	}

	better := formatter.Dim("no")
	if m.feelingBetter {
		better = formatter.StyleGreen.Render("yes")
	}
	b.WriteString(fmt.Sprintf("%s %s\n", formatter.Dim("Feeling better:"), better))

	switch m.prompt {
	case promptTemperature:
		b.WriteString("\n" + formatter.Bold("Temperature (°C): ") + m.input.View() + "\n")
	case promptAmount:
		b.WriteString("\n" + formatter.Bold("Paracetamol (mg): ") + m.input.View() + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	} else if m.message != "" {
		b.WriteString("\n" + formatter.StyleBlue.Render(m.message) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}
