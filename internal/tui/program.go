package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives the program until the user quits. Pending theme writes are
// flushed before it returns.
func Run(opts Options, programOpts ...tea.ProgramOption) error {
	if opts.List == nil || opts.Create == nil || opts.Edit == nil || opts.Login == nil {
		return fmt.Errorf("tui: all screen controllers are required")
	}

	m := NewModel(opts)
	defer m.Close()

	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if opts.Theme != nil {
		ctx := opts.Context
		if ctx == nil {
			ctx = context.Background()
		}
		if err := opts.Theme.Flush(ctx); err != nil {
			return fmt.Errorf("flush theme: %w", err)
		}
	}
	return nil
}
