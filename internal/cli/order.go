package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ytget/masonry/internal/model"
	"github.com/ytget/masonry/internal/ordersync"
	"github.com/ytget/masonry/internal/platform"
)

func newOrderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Inspect or write order files",
		Long:  `An order file lists item ids in the order the layout should show them. A running demo watches its order file and applies edits.`,
	}
	cmd.AddCommand(newOrderShowCmd())
	cmd.AddCommand(newOrderWriteCmd())
	return cmd
}

func newOrderShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print the ids of an order file, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := ordersync.ReadOrder(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, id := range ids {
				fmt.Fprintln(out, id)
			}
			loggerFromContext(cmd.Context()).Debug("order read", "file", args[0], "count", len(ids))
			return nil
		},
	}
}

func newOrderWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write <file> <id>...",
		Short: "Replace an order file with the given ids",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]model.ItemID, 0, len(args)-1)
			seen := make(map[model.ItemID]bool, len(args)-1)
			for _, a := range args[1:] {
				id := model.ItemID(a)
				if seen[id] {
					return fmt.Errorf("duplicate id %q", a)
				}
				seen[id] = true
				ids = append(ids, id)
			}
			if err := platform.CreateDirectoryIfNotExists(filepath.Dir(args[0])); err != nil {
				return err
			}
			if err := ordersync.WriteOrder(args[0], ids); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("Order written", "file", args[0], "count", len(ids))
			return nil
		},
	}
}
