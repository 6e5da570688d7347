package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/splitpane/internal/logging"
	"github.com/jask/splitpane/internal/tui"
)

func (c *CLI) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Launch the studio shell (default)",
		Args:  cobra.NoArgs,
		RunE:  c.runShell,
	}
}

// runShell starts the TUI. Logs go to the configured file since the
// terminal is in alt-screen mode.
func (c *CLI) runShell(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	f, err := logging.OpenFile(c.cfg.Log.File)
	if err != nil {
		return err
	}
	defer f.Close()
	logger := logging.New(f, c.level())

	store, closeStore, err := openStore(ctx, c.cfg.Storage)
	if err != nil {
		return err
	}
	defer closeStore()

	m, err := tui.New(ctx, tui.Options{
		Splitter: c.cfg.Splitter,
		Studio:   c.cfg.Studio,
		Store:    store,
		Debounce: c.cfg.Storage.Debounce,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	// flush even when ctx was cancelled by a signal
	defer m.Close(context.WithoutCancel(ctx))

	logger.Info("shell started", "backend", c.cfg.Storage.Backend, "splitter", m.Splitter().ID(), "state", m.Splitter().State())
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	_, err = p.Run()
	return err
}
