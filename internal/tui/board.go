package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/talha426/Shadow-Console-Track/internal/engine"
)

// RunBoard opens the interactive mission board.
func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newBoardModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

// RunFocus runs one Shadow Mode session of the given length.
func RunFocus(ctx context.Context, svc *engine.Service, d time.Duration, out io.Writer) error {
	m := newFocusModel(ctx, svc, d)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
