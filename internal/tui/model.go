package tui

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/vytor/powerdrill/internal/drill"
	"github.com/vytor/powerdrill/internal/errors"
	"github.com/vytor/powerdrill/internal/logger"
	"github.com/vytor/powerdrill/internal/models"
	"github.com/vytor/powerdrill/internal/ui"
)

// Options tunes the play screen.
type Options struct {
	FeedbackDelay   time.Duration
	Sound           bool
	DurationMinutes int
	// Bell receives a BEL byte after every correct answer when Sound is on.
	Bell io.Writer
}

type screen int

const (
	screenSettings screen = iota
	screenRange
	screenPlaying
	screenSummary
)

type setting int

const (
	settingVariant setting = iota
	settingMode
	settingDifficulty
	settingDuration
	settingCount
)

// tickMsg and advanceMsg carry the tick generation they were scheduled
// under, so messages from an abandoned session are dropped.
type tickMsg struct{ gen uint64 }

type advanceMsg struct{ gen uint64 }

const maxBoundDigits = 4

type rangeForm struct {
	fields     [2]string
	focus      int
	err        string
	startAfter bool
}

type playModel struct {
	ctx  context.Context
	game *drill.Game
	opts Options
	log  *logger.Logger

	width  int
	height int

	variant    int
	mode       int
	difficulty int
	minutes    int
	focus      setting

	screen screen
	form   rangeForm
	result *drill.Result
	err    error
	status string
}

var (
	variantLabels    = lo.Map(models.Variants, func(v models.Variant, _ int) string { return v.Label() })
	modeLabels       = lo.Map(models.Modes, func(m models.Mode, _ int) string { return m.Label() })
	difficultyLabels = lo.Map(models.Difficulties, func(d models.Difficulty, _ int) string { return d.Label() })
)

func newPlayModel(ctx context.Context, game *drill.Game, opts Options) playModel {
	minutes := opts.DurationMinutes
	if minutes < drill.MinDurationMinutes || minutes > drill.MaxDurationMinutes {
		minutes = drill.MinDurationMinutes
	}
	if opts.Bell == nil {
		opts.Bell = io.Discard
	}
	return playModel{
		ctx:     ctx,
		game:    game,
		opts:    opts,
		log:     logger.FromContext(ctx).WithPrefix("tui"),
		minutes: minutes,
		status:  "Pick your drill and press enter.",
	}
}

func (m playModel) Init() tea.Cmd { return nil }

func (m playModel) selectedVariant() models.Variant { return models.Variants[m.variant] }

func (m playModel) selectedMode() models.Mode { return models.Modes[m.mode] }

func (m playModel) selectedDifficulty() models.Difficulty {
	return models.Difficulties[m.difficulty]
}

func tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m.onTick(msg)
	case advanceMsg:
		if msg.gen == m.game.TickGeneration() {
			m.game.NextQuestion()
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.game.Exit()
			return m, tea.Quit
		}
		switch m.screen {
		case screenSettings:
			return m.updateSettings(msg)
		case screenRange:
			return m.updateRange(msg)
		case screenPlaying:
			return m.updatePlaying(msg)
		case screenSummary:
			return m.updateSummary(msg)
		}
	}
	return m, nil
}

func (m playModel) onTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if m.screen != screenPlaying || msg.gen != m.game.TickGeneration() {
		return m, nil
	}
	res, err := m.game.Tick(m.ctx, msg.gen)
	if res != nil {
		return m.showSummary(res, err), nil
	}
	return m, tickCmd(msg.gen)
}

func (m playModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.focus > 0 {
			m.focus--
		}
	case "down", "j":
		if m.focus < settingCount-1 {
			m.focus++
		}
	case "left", "h":
		m = m.cycle(-1)
	case "right", "l":
		m = m.cycle(1)
	case "tab":
		m.variant = (m.variant + 1) % len(models.Variants)
	case "c":
		return m.openRangeForm(false), nil
	case "enter", " ":
		return m.start()
	}
	return m, nil
}

func (m playModel) cycle(delta int) playModel {
	wrap := func(i, n int) int { return ((i+delta)%n + n) % n }
	switch m.focus {
	case settingVariant:
		m.variant = wrap(m.variant, len(models.Variants))
	case settingMode:
		m.mode = wrap(m.mode, len(models.Modes))
	case settingDifficulty:
		m.difficulty = wrap(m.difficulty, len(models.Difficulties))
	case settingDuration:
		m.minutes = lo.Clamp(m.minutes+delta, drill.MinDurationMinutes, drill.MaxDurationMinutes)
	}
	return m
}

func (m playModel) start() (tea.Model, tea.Cmd) {
	gen, err := m.game.Start(m.ctx, m.selectedVariant(), m.selectedMode(), m.selectedDifficulty(), m.minutes)
	if errors.IsInvalidRange(err) {
		m = m.openRangeForm(true)
		m.status = "Set a custom range for " + m.selectedVariant().Label() + " first."
		return m, nil
	}
	if err != nil {
		m.log.Warn("start failed: %v", err)
		m.status = ui.Bad.Render(ui.IconError + " " + errorMessage(err))
		return m, nil
	}
	m.screen = screenPlaying
	m.result = nil
	m.err = nil
	m.status = ""
	return m, tickCmd(gen)
}

func (m playModel) openRangeForm(startAfter bool) playModel {
	m.form = rangeForm{startAfter: startAfter}
	if cr, err := m.game.CustomRange(m.ctx, m.selectedVariant()); err == nil && cr != nil {
		m.form.fields = [2]string{strconv.Itoa(cr.Min), strconv.Itoa(cr.Max)}
	}
	m.screen = screenRange
	return m
}

func (m playModel) updateRange(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = screenSettings
		return m, nil
	case "tab", "up", "down", "shift+tab":
		m.form.focus = 1 - m.form.focus
		return m, nil
	case "backspace":
		f := m.form.fields[m.form.focus]
		if f != "" {
			m.form.fields[m.form.focus] = f[:len(f)-1]
		}
		return m, nil
	case "enter":
		return m.saveRange()
	}
	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			f := m.form.fields[m.form.focus]
			if r >= '0' && r <= '9' && len(f) < maxBoundDigits {
				m.form.fields[m.form.focus] = f + string(r)
			}
		}
	}
	return m, nil
}

func (m playModel) saveRange() (tea.Model, tea.Cmd) {
	if m.form.fields[0] == "" || m.form.fields[1] == "" {
		m.form.err = "enter both a minimum and a maximum"
		return m, nil
	}
	minVal, _ := strconv.Atoi(m.form.fields[0])
	maxVal, _ := strconv.Atoi(m.form.fields[1])
	cr, err := m.game.SaveCustomRange(m.ctx, m.selectedVariant(), minVal, maxVal)
	if err != nil {
		m.form.err = errorMessage(err)
		return m, nil
	}
	m.screen = screenSettings
	m.status = fmt.Sprintf("Custom %s range set to %s.", m.selectedVariant().Label(), cr)
	if m.form.startAfter {
		return m.start()
	}
	return m, nil
}

func (m playModel) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		res, err := m.game.End(m.ctx)
		if res == nil {
			m.screen = screenSettings
			return m, nil
		}
		return m.showSummary(res, err), nil
	case "backspace":
		m.game.Backspace()
		return m, nil
	case "ctrl+u", "delete":
		m.game.ClearInput()
		return m, nil
	}
	if msg.Type != tea.KeyRunes {
		return m, nil
	}
	for _, r := range msg.Runes {
		if m.game.AppendDigit(r) == drill.OutcomeCorrect {
			return m, m.onCorrect()
		}
	}
	return m, nil
}

func (m playModel) onCorrect() tea.Cmd {
	var cmds []tea.Cmd
	if m.opts.Sound {
		bell := m.opts.Bell
		cmds = append(cmds, func() tea.Msg {
			_, _ = io.WriteString(bell, "\a")
			return nil
		})
	}
	if m.opts.FeedbackDelay <= 0 {
		m.game.NextQuestion()
	} else {
		gen := m.game.TickGeneration()
		cmds = append(cmds, tea.Tick(m.opts.FeedbackDelay, func(time.Time) tea.Msg { return advanceMsg{gen: gen} }))
	}
	return tea.Batch(cmds...)
}

func (m playModel) showSummary(res *drill.Result, err error) playModel {
	m.screen = screenSummary
	m.result = res
	m.err = err
	if err != nil {
		m.log.Error("failed to record score: %v", err)
	}
	return m
}

func (m playModel) updateSummary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.game.Exit()
		return m, tea.Quit
	case "enter", "esc":
		m.game.Exit()
		m.screen = screenSettings
		m.status = "Pick your drill and press enter."
		return m, nil
	case "r":
		return m.start()
	}
	return m, nil
}

func errorMessage(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func (m playModel) View() string {
	header := ui.Heading(ui.IconBolt, "Power Drill")
	var body string
	switch m.screen {
	case screenSettings:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSettings(), "  ", m.renderScores(m.selectedVariant()))
	case screenRange:
		body = m.renderRangeForm()
	case screenPlaying:
		body = m.renderPlaying()
	case screenSummary:
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSummary(), "  ", m.renderScores(m.result.Settings.Variant))
	}

	out := header + "\n\n" + body + "\n"
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}
	return out
}

func (m playModel) renderSettings() string {
	rows := []struct {
		label string
		value string
	}{
		{"Variant", ui.Options(variantLabels, m.variant)},
		{"Mode", ui.Options(modeLabels, m.mode)},
		{"Difficulty", ui.Options(difficultyLabels, m.difficulty)},
		{"Duration", fmt.Sprintf("%d min", m.minutes)},
	}

	lines := []string{ui.PanelTitle.Render("Settings"), ""}
	for i, r := range rows {
		cursor := "  "
		label := ui.Key.Render(r.label + ":")
		if setting(i) == m.focus {
			cursor = ui.Selected.Render("> ")
		}
		lines = append(lines, cursor+label+" "+r.value)
	}
	lines = append(lines, "", ui.LabelValue("Range", m.rangeText()))
	lines = append(lines, "",
		ui.Muted.Render("↑/↓ select · ←/→ change · tab variant"),
		ui.Muted.Render("c custom range · enter start · q quit"),
	)
	return ui.Panel.Render(strings.Join(lines, "\n"))
}

func (m playModel) rangeText() string {
	v := m.selectedVariant()
	if r, ok := models.PresetRange(v, m.selectedDifficulty()); ok {
		return r.String()
	}
	cr, err := m.game.CustomRange(m.ctx, v)
	if err != nil || cr == nil {
		return ui.Warn.Render("not set (press c)")
	}
	return cr.String()
}

func (m playModel) renderRangeForm() string {
	v := m.selectedVariant()
	lines := []string{ui.PanelTitle.Render("Custom " + v.Label() + " Range"), ""}
	for i, label := range []string{"Minimum", "Maximum"} {
		cursor := "  "
		if i == m.form.focus {
			cursor = ui.Selected.Render("> ")
		}
		lines = append(lines, cursor+ui.LabelValue(label, ui.Input.Render(m.form.fields[i]+" ")))
	}
	if m.form.err != "" {
		lines = append(lines, "", ui.Bad.Render(ui.IconError+" "+m.form.err))
	}
	lines = append(lines, "", ui.Muted.Render(fmt.Sprintf("0 to %d, at least %d apart", drill.MaxCustomBound, drill.MinCustomGap)))
	lines = append(lines, ui.Muted.Render("tab switch · enter save · esc cancel"))
	return ui.Modal.Render(strings.Join(lines, "\n"))
}

func (m playModel) renderPlaying() string {
	v := m.game.View()
	s := v.Settings
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		ui.Clock(v.Clock(), v.TimeRemaining),
		"    ",
		ui.LabelValue("Score", ui.Gold.Render(strconv.Itoa(v.Score))),
	)

	prompt := ui.Prompt.Render(v.Prompt)
	if v.Solved {
		prompt = ui.PromptSolved.Render(v.Prompt + " " + ui.IconCheck)
	}

	lines := []string{
		top,
		ui.Muted.Render(fmt.Sprintf("%s · %s · %s %s", s.Variant.Label(), s.Mode.Label(), s.Difficulty.Label(), s.Range)),
		"",
		prompt,
		"",
		"  = " + ui.Input.Render(v.Input+" "),
		"",
		ui.Muted.Render("type digits · backspace delete · ctrl+u clear · esc end"),
	}
	return ui.Panel.Render(strings.Join(lines, "\n"))
}

func (m playModel) renderSummary() string {
	res := m.result
	lines := []string{
		ui.Heading(ui.IconTrophy, "Time's up!"),
		"",
		ui.LabelValue("Score", ui.Gold.Render(strconv.Itoa(res.Score))),
	}
	switch {
	case m.err != nil:
		lines = append(lines, ui.Bad.Render(ui.IconError+" score could not be saved"))
	case res.Settings.Difficulty.IsCustom():
		lines = append(lines, ui.Muted.Render(ui.IconInfo+" custom ranges are not ranked"))
	}

	lines = append(lines, "", ui.PanelTitle.Render("Slowest answers"))
	if len(res.Attempts) == 0 {
		lines = append(lines, ui.Muted.Render("none"))
	}
	for _, a := range res.Attempts {
		lines = append(lines, fmt.Sprintf("%-8s = %-10d %6.2fs", a.PromptText, a.AnswerValue, a.TimeSeconds))
	}
	lines = append(lines, "", ui.Muted.Render("r play again · enter menu · q quit"))
	return ui.Modal.Render(strings.Join(lines, "\n"))
}

func (m playModel) renderScores(v models.Variant) string {
	lines := []string{ui.PanelTitle.Render(ui.IconTrophy + " " + v.Label() + " High Scores"), ""}
	entries := m.game.TopScores(v)
	if len(entries) == 0 {
		lines = append(lines, ui.Muted.Render("No scores yet"))
	}
	for i, e := range entries {
		lines = append(lines, ui.ScoreLine(i+1, e))
	}
	return ui.Panel.Render(strings.Join(lines, "\n"))
}
