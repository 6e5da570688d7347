// Package cli implements the splitpane command-line interface.
//
// The root command (and its "run" alias) launches the studio shell; the
// "layouts" commands inspect and reset persisted splitter state in whichever
// storage backend the config selects.
//
// All commands accept --config to point at a TOML config file and
// --verbose (-v) for debug logging. Loggers travel through
// context.Context; see internal/logging.
package cli

import (
	"fmt"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jask/splitpane/internal/config"
	"github.com/jask/splitpane/internal/logging"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds flag values and the loaded config shared by all commands.
type CLI struct {
	out     io.Writer
	errOut  io.Writer
	cfgPath string
	verbose bool
	cfg     config.Config
}

// New creates a CLI writing command output to out and logs to errOut.
func New(out, errOut io.Writer) *CLI {
	return &CLI{out: out, errOut: errOut}
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "splitpane",
		Short:        "Studio shell with a resizable, collapsible toolbar",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.cfgPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.New(c.errOut, c.level())))
			return nil
		},
		RunE: c.runShell,
	}
	root.SetVersionTemplate(fmt.Sprintf("splitpane %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.PersistentFlags().StringVar(&c.cfgPath, "config", "", "config file (default $SPLITPANE_CONFIG or ~/.config/splitpane/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.layoutsCommand())
	return root
}

func (c *CLI) level() charmlog.Level {
	if c.verbose {
		return charmlog.DebugLevel
	}
	return logging.ParseLevel(c.cfg.Log.Level)
}
