package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/masonry/internal/demo"
	"github.com/ytget/masonry/internal/platform"
	"github.com/ytget/masonry/internal/ui"
)

func newItemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Work with demo item files",
	}
	cmd.AddCommand(newItemsGenerateCmd())
	return cmd
}

func newItemsGenerateCmd() *cobra.Command {
	var (
		count  int
		seed   int64
		images string
	)

	cmd := &cobra.Command{
		Use:   "generate <file>",
		Short: "Write a TOML item file with random cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			var pictures []string
			if images != "" {
				var err error
				if pictures, err = platform.ListImages(images, ui.MaxDemoImages); err != nil {
					return err
				}
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			if err := platform.CreateDirectoryIfNotExists(filepath.Dir(args[0])); err != nil {
				return err
			}
			cards := demo.NewGenerator(seed, pictures).Generate(count)
			if err := demo.SaveCards(args[0], cards); err != nil {
				return err
			}
			prog.done("Generated " + args[0])
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 24, "number of cards")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().StringVar(&images, "images", "", "directory with pictures to reference")
	return cmd
}
