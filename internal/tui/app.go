// Package tui provides the interactive Bubble Tea dashboard for savr.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/theirongolddev/savr/internal/cli"
	"github.com/theirongolddev/savr/internal/config"
	"github.com/theirongolddev/savr/internal/model"
	"github.com/theirongolddev/savr/internal/pipeline"
	"github.com/theirongolddev/savr/internal/store"
	"github.com/theirongolddev/savr/internal/tui/components"
	"github.com/theirongolddev/savr/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Acknowledgements shown by the demo save actions.
const (
	SaveWeekNotice  = "week saved locally (demo)"
	SaveMonthNotice = "monthly table saved (demo)"
)

// Workbook is the storage the dashboard reads and writes.
type Workbook interface {
	LoadWeeks(ctx context.Context) ([]model.Week, error)
	SaveRows(ctx context.Context, weeks []model.Week) error
	AddWeek(ctx context.Context, label string, days []string, suggested decimal.Decimal) (model.Week, error)
	// ActiveWeekID returns store.ErrNoActiveWeek when no week is active.
	ActiveWeekID(ctx context.Context) (string, error)
	SetActiveWeek(ctx context.Context, id string) error
}

// RecalcMsg carries the outcome of a recalculation.
type RecalcMsg struct {
	Result   pipeline.Result
	ActiveID string
	Week     *model.Week
	Notice   string
	Err      error
}

type keyMap struct {
	Quit      key.Binding
	Help      key.Binding
	Recalc    key.Binding
	NewWeek   key.Binding
	SaveWeek  key.Binding
	SaveMonth key.Binding
	PrevWeek  key.Binding
	NextWeek  key.Binding
	Toggle    key.Binding
	Skip      key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Toggle help")),
	Recalc:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Recalculate")),
	NewWeek:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "Add a new week")),
	SaveWeek:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Save week")),
	SaveMonth: key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "Save month")),
	PrevWeek:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("← h", "Previous week")),
	NextWeek:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→ l", "Next week")),
	Toggle:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "Toggle saved")),
	Skip:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "Toggle skipped")),
}

// App is the root Bubble Tea model.
type App struct {
	wb  Workbook
	cfg config.Config
	log *zap.Logger

	// Data
	loaded   bool
	result   pipeline.Result
	activeID string
	week     *model.Week
	err      error

	// UI state
	width    int
	height   int
	showHelp bool
	busy     bool
	notice   string
	table    table.Model
	spinner  spinner.Model

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
)

// NewApp creates a new TUI app model.
func NewApp(wb Workbook, cfg config.Config, needSetup bool, log *zap.Logger) App {
	if log == nil {
		log = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	a := App{
		wb:        wb,
		cfg:       cfg,
		log:       log,
		table:     newWeekTable(),
		spinner:   sp,
		needSetup: needSetup,
	}
	if needSetup {
		a.setupVals = NewSetupValues(cfg)
		a.setupForm = NewSetupForm(a.setupVals)
	}
	return a
}

func newWeekTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Day", Width: 8},
			{Title: "Status", Width: 9},
			{Title: "Suggested", Width: 11},
			{Title: "Goal", Width: 11},
		}),
		table.WithFocused(true),
		table.WithHeight(8),
	)

	th := theme.Active
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(th.Border).
		BorderBottom(true).
		Foreground(th.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(th.TextPrimary).
		Background(th.SurfaceHover).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	} else {
		cmds = append(cmds, a.recalcCmd(""))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case RecalcMsg:
		a.busy = false
		a.loaded = true
		a.err = msg.Err
		if msg.Err != nil {
			return a, nil
		}
		a.result = msg.Result
		a.activeID = msg.ActiveID
		a.week = msg.Week
		if msg.Notice != "" {
			a.notice = msg.Notice
		}
		a.syncTable()
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if key.Matches(msg, keys.Help) {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		return a.handleKey(msg)
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, keys.SaveWeek):
		a.notice = SaveWeekNotice
		return a, nil

	case key.Matches(msg, keys.SaveMonth):
		a.notice = SaveMonthNotice
		return a, nil

	case a.busy:
		return a, nil

	case key.Matches(msg, keys.Recalc):
		a.busy = true
		return a, a.recalcCmd("recalculated")

	case key.Matches(msg, keys.NewWeek):
		a.busy = true
		return a, a.addWeekCmd()

	case key.Matches(msg, keys.PrevWeek):
		return a.switchWeek(-1)

	case key.Matches(msg, keys.NextWeek):
		return a.switchWeek(1)

	case key.Matches(msg, keys.Toggle):
		return a.toggleRow(model.StatusSaved)

	case key.Matches(msg, keys.Skip):
		return a.toggleRow(model.StatusSkipped)
	}

	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return a, cmd
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		cfg, err := a.setupVals.Apply(a.cfg)
		if err == nil {
			err = config.Save(cfg)
		}
		if err != nil {
			a.log.Warn("saving setup", zap.Error(err))
			a.notice = "setup not saved: " + err.Error()
		} else {
			a.cfg = cfg
			theme.SetActive(cfg.Appearance.Theme)
		}
		a.needSetup = false
		a.setupForm = nil
		a.busy = true
		return a, a.recalcCmd("")
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		a.busy = true
		return a, a.recalcCmd("")
	}

	return a, cmd
}

// switchWeek moves the active week by delta and recalculates.
func (a App) switchWeek(delta int) (tea.Model, tea.Cmd) {
	weeks := a.result.Weeks
	if len(weeks) == 0 {
		return a, nil
	}
	idx := weekIndex(weeks, a.activeID) + delta
	if idx < 0 || idx >= len(weeks) {
		return a, nil
	}

	id := weeks[idx].ID
	a.busy = true
	return a, a.withWorkbook("", func(ctx context.Context) error {
		return a.wb.SetActiveWeek(ctx, id)
	})
}

// toggleRow flips the selected row between status and pending, writes the
// table back, and recalculates so goals follow the new status.
func (a App) toggleRow(status model.RowStatus) (tea.Model, tea.Cmd) {
	if a.week == nil || len(a.week.Rows) == 0 {
		return a, nil
	}
	i := a.table.Cursor()
	if i < 0 || i >= len(a.week.Rows) {
		return a, nil
	}

	weeks := make([]model.Week, len(a.result.Weeks))
	for j, w := range a.result.Weeks {
		weeks[j] = w.Clone()
	}
	wi := weekIndex(weeks, a.week.ID)
	if wi < 0 {
		return a, nil
	}

	row := &weeks[wi].Rows[i]
	if row.Status == status {
		row.Status = model.StatusPending
	} else {
		row.Status = status
	}

	a.busy = true
	return a, a.withWorkbook("", func(ctx context.Context) error {
		return a.wb.SaveRows(ctx, weeks)
	})
}

func (a *App) syncTable() {
	if a.week == nil {
		a.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(a.week.Rows))
	for _, r := range a.week.Rows {
		rows = append(rows, table.Row{
			r.Day,
			statusLabel(r.Status),
			cli.FormatMoney(r.Suggested),
			cli.FormatOptionalMoney(r.Goal),
		})
	}
	a.table.SetRows(rows)
	a.table.SetHeight(len(rows) + 1)
	if a.table.Cursor() >= len(rows) {
		a.table.SetCursor(len(rows) - 1)
	}
}

func statusLabel(s model.RowStatus) string {
	switch s {
	case model.StatusSaved:
		return "✓ saved"
	case model.StatusSkipped:
		return "· skipped"
	default:
		return string(s)
	}
}

func weekIndex(weeks []model.Week, id string) int {
	for i, w := range weeks {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  savr needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if !a.loaded {
		return "\n  " + a.spinner.View() + " Loading workbook…"
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	cw := a.contentWidth()

	labels := make([]string, len(a.result.Weeks))
	for i, w := range a.result.Weeks {
		labels[i] = w.Label
	}
	header := components.RenderWeekBar(labels, weekIndex(a.result.Weeks, a.activeID), cw)

	var body string
	if a.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		body = errStyle.Render("  " + a.err.Error())
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, a.viewMetrics(cw), a.viewWeek(cw))
	}

	statusBar := components.RenderStatusBar(a.width, a.notice, a.busy)

	contentH := a.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	body = padHeight(truncateHeight(body, contentH), contentH)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)
}

func (a App) viewMetrics(cw int) string {
	ov := a.result.Overview
	c := a.result.Classification

	return components.MetricCardRow([]components.Metric{
		{Label: "Daily", Value: cli.FormatMoney(ov.DailySuggested), Delta: c.Rule + " · " + cli.FormatRate(c.Rate)},
		{Label: "Week target", Value: cli.FormatMoney(ov.WeeklyTarget)},
		{Label: "Month target", Value: cli.FormatMoney(ov.MonthlyTarget)},
		{Label: "Saved", Value: cli.FormatMoney(ov.TotalSaved), Delta: fmt.Sprintf("%d of %d days", ov.SavedRows, ov.Rows)},
	}, cw)
}

func (a App) viewWeek(cw int) string {
	if a.week == nil {
		return components.ContentCard("Week", "No active week. Press n to add one.", cw)
	}

	barW := cw - 24
	if barW < 10 {
		barW = 10
	}
	progress := components.GoalBar("Month", a.result.Overview.SavedPercent, 6, barW)

	saved, skipped := 0, 0
	for _, r := range a.week.Rows {
		switch r.Status {
		case model.StatusSaved:
			saved++
		case model.StatusSkipped:
			skipped++
		}
	}
	legend := components.StatusLegend(saved, skipped, len(a.week.Rows))

	title := fmt.Sprintf("%s  %s", a.week.Label, cli.ShortID(a.week.ID))
	return components.ContentCard(title, a.table.View()+"\n\n"+legend+"\n"+progress, cw)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range []key.Binding{
		keys.PrevWeek, keys.NextWeek, keys.Toggle, keys.Skip,
		keys.NewWeek, keys.Recalc, keys.SaveWeek, keys.SaveMonth,
		keys.Help, keys.Quit,
	} {
		h := bind.Help()
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-8s", h.Key)),
			descStyle.Render(h.Desc))
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()))
}

// ─── Commands ───────────────────────────────────────────────────

// capture is a pipeline.Renderer that records what it was asked to draw.
type capture struct {
	week     *model.Week
	overview model.BudgetOverview
}

func (c *capture) LoadWeekTable(_ context.Context, w model.Week) error {
	c.week = &w
	return nil
}

func (c *capture) UpdateBudgetOverview(_ context.Context, ov model.BudgetOverview) error {
	c.overview = ov
	return nil
}

// recalcCmd reloads the workbook, recalculates, and writes the propagated
// rows back.
func (a App) recalcCmd(notice string) tea.Cmd {
	return a.withWorkbook(notice, nil)
}

// withWorkbook runs fn against the workbook and then recalculates.
func (a App) withWorkbook(notice string, fn func(ctx context.Context) error) tea.Cmd {
	wb, cfg, log := a.wb, a.cfg, a.log
	return func() tea.Msg {
		ctx := context.Background()
		if fn != nil {
			if err := fn(ctx); err != nil {
				return RecalcMsg{Err: err}
			}
		}
		return recalculate(ctx, wb, cfg, log, notice)
	}
}

func (a App) addWeekCmd() tea.Cmd {
	daily := a.result.DailySuggested
	days := config.Days(a.cfg)
	return a.withWorkbook("week added", func(ctx context.Context) error {
		_, err := a.wb.AddWeek(ctx, "", days, daily)
		return err
	})
}

func recalculate(ctx context.Context, wb Workbook, cfg config.Config, log *zap.Logger, notice string) RecalcMsg {
	profile, err := config.GetProfile(cfg)
	if err != nil {
		return RecalcMsg{Err: err}
	}

	weeks, err := wb.LoadWeeks(ctx)
	if err != nil {
		return RecalcMsg{Err: fmt.Errorf("loading weeks: %w", err)}
	}
	activeID, err := wb.ActiveWeekID(ctx)
	if errors.Is(err, store.ErrNoActiveWeek) {
		activeID = ""
	} else if err != nil {
		return RecalcMsg{Err: fmt.Errorf("reading active week: %w", err)}
	}

	c := &capture{}
	res, err := pipeline.Recalculate(ctx, pipeline.Inputs{
		Profile:      profile,
		Rates:        config.GetRates(cfg),
		Weeks:        weeks,
		ActiveWeekID: activeID,
		Logger:       log,
	}, c)
	if err != nil {
		return RecalcMsg{Err: err}
	}

	if err := wb.SaveRows(ctx, res.Weeks); err != nil {
		return RecalcMsg{Err: fmt.Errorf("saving rows: %w", err)}
	}

	return RecalcMsg{Result: res, ActiveID: activeID, Week: c.week, Notice: notice}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if limit < 1 || len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
