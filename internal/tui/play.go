package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vytor/powerdrill/internal/drill"
)

func RunPlay(ctx context.Context, game *drill.Game, opts Options, out io.Writer) error {
	if opts.Bell == nil {
		opts.Bell = out
	}
	m := newPlayModel(ctx, game, opts)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
