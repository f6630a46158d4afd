package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/talha426/Shadow-Console-Track/internal/engine"
	"github.com/talha426/Shadow-Console-Track/internal/ui"
)

// focusModel runs one Shadow Mode session: a countdown that awards the
// session XP when it finishes or when the user banks an elapsed session.
type focusModel struct {
	ctx context.Context
	svc *engine.Service

	total   time.Duration
	started time.Time
	timer   timer.Model
	bar     progress.Model

	result *engine.FocusResult
	err    error
	done   bool
}

type focusDoneMsg struct {
	res *engine.FocusResult
	err error
}

func newFocusModel(ctx context.Context, svc *engine.Service, d time.Duration) focusModel {
	if d <= 0 {
		d = engine.FocusDefaultMinutes * time.Minute
	}
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40
	return focusModel{
		ctx:     ctx,
		svc:     svc,
		total:   d,
		started: time.Now(),
		timer:   timer.NewWithInterval(d, time.Second),
		bar:     bar,
	}
}

func (m focusModel) Init() tea.Cmd {
	return m.timer.Init()
}

func (m focusModel) awardCmd(elapsed time.Duration) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteFocusSession(m.ctx, elapsed)
		return focusDoneMsg{res: res, err: err}
	}
}

func (m focusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timer.TickMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd
	case timer.TimeoutMsg:
		return m, m.awardCmd(m.total)
	case focusDoneMsg:
		m.done = true
		m.result = msg.res
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			// Abandon: no XP for a cancelled session.
			return m, tea.Quit
		case "b":
			// Bank the elapsed time early.
			return m, m.awardCmd(time.Since(m.started))
		}
	}
	return m, nil
}

func (m focusModel) View() string {
	if m.done {
		if m.err != nil {
			return "Session failed: " + m.err.Error() + "\n"
		}
		line := fmt.Sprintf("%s Session complete: +%d XP", ui.IconSparkle, m.result.XPAwarded)
		if m.result.LevelUp {
			line += "  " + ui.BadgeLevelUp
		}
		return line + "\n"
	}

	elapsed := m.total - m.timer.Timeout
	ratio := float64(elapsed) / float64(m.total)

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconTimer, "Shadow Mode"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s remaining\n", m.timer.View()))
	b.WriteString("  " + m.bar.ViewAs(ratio))
	b.WriteString("\n\n")
	b.WriteString(ui.Dim.Render("  b: bank elapsed time  q: abandon"))
	b.WriteString("\n")
	return b.String()
}
