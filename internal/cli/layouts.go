package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jask/splitpane/internal/layout"
	"github.com/jask/splitpane/internal/logging"
	"github.com/jask/splitpane/widgets"
)

// layoutsCommand creates the persisted-layout management command.
func (c *CLI) layoutsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "Inspect or reset persisted splitter state",
	}
	cmd.AddCommand(c.layoutsListCommand())
	cmd.AddCommand(c.layoutsResetCommand())
	return cmd
}

func (c *CLI) layoutsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List persisted splitters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, closeStore, err := openStore(ctx, c.cfg.Storage)
			if err != nil {
				return err
			}
			defer closeStore()

			keys, err := store.Keys(ctx)
			if err != nil {
				return fmt.Errorf("list layouts: %w", err)
			}
			if len(keys) == 0 {
				fmt.Fprintln(c.out, "No saved layouts")
				return nil
			}
			sort.Strings(keys)
			rows := make([][]string, 0, len(keys))
			for _, k := range keys {
				raw, ok, err := store.Get(ctx, k)
				if err != nil {
					return fmt.Errorf("read layout %q: %w", k, err)
				}
				if !ok {
					continue
				}
				rows = append(rows, layoutRow(k, raw))
			}
			table := widgets.Table{Headers: []string{"SPLITTER", "FLEX", "COLLAPSED"}, Rows: rows}
			fmt.Fprintln(c.out, table.Render(200, len(rows)+1))
			return nil
		},
	}
}

func layoutRow(key string, raw []byte) []string {
	st, err := layout.DecodeState(raw)
	if err != nil {
		return []string{key, "invalid", "-"}
	}
	collapsed := "-"
	if st.Collapsed != layout.SideNone {
		collapsed = st.Collapsed.String()
	}
	return []string{key, strconv.FormatFloat(st.Flex, 'f', 3, 64), collapsed}
}

func (c *CLI) layoutsResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset [splitter...]",
		Short: "Delete persisted state so splitters start from their defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := logging.FromContext(ctx)
			store, closeStore, err := openStore(ctx, c.cfg.Storage)
			if err != nil {
				return err
			}
			defer closeStore()

			ids := args
			if len(ids) == 0 {
				if ids, err = store.Keys(ctx); err != nil {
					return fmt.Errorf("list layouts: %w", err)
				}
			}
			for _, id := range ids {
				if err := store.Delete(ctx, id); err != nil {
					return fmt.Errorf("reset %q: %w", id, err)
				}
				logger.Debug("layout reset", "splitter", id)
			}
			fmt.Fprintf(c.out, "Reset %d layout(s)\n", len(ids))
			return nil
		},
	}
}
