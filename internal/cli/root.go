package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ytget/masonry/internal/platform"
	"github.com/ytget/masonry/internal/ui"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
// The main package calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Launcher opens the demo window and blocks until it is closed.
type Launcher func(ctx context.Context, opts ui.Options) error

// Execute runs the masonry-demo CLI until the command finishes or ctx is
// cancelled.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr, launchWindow).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Logs go to logOut; the root command
// hands its options to launch.
func NewRootCommand(logOut io.Writer, launch Launcher) *cobra.Command {
	var (
		verbose      bool
		homePictures bool
		opts         ui.Options
	)

	root := &cobra.Command{
		Use:          "masonry-demo",
		Short:        "Masonry demo shows a reorderable column-packed card layout",
		Long:         `Masonry demo opens a window with cards packed into columns. Cards can be dragged to new positions, and the order can be kept in sync with a TOML order file.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logOut, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Count < 0 {
				return fmt.Errorf("--count must not be negative")
			}
			if opts.ColumnWidth < 0 {
				return fmt.Errorf("--column-width must not be negative")
			}
			logger := loggerFromContext(cmd.Context())
			if homePictures && opts.ImagesDir == "" {
				dir, err := platform.GetHomePicturesDir()
				if err != nil {
					return err
				}
				opts.ImagesDir = dir
			}
			logger.Debug("starting demo",
				"items", opts.ItemsFile, "order", opts.OrderFile, "images", opts.ImagesDir,
				"count", opts.Count, "columnWidth", opts.ColumnWidth, "seed", opts.Seed)
			return launch(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("masonry-demo %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	flags := root.Flags()
	flags.StringVar(&opts.ItemsFile, "items", "", "TOML file with the cards to show (generated when empty)")
	flags.StringVar(&opts.OrderFile, "order-file", "", "TOML order file kept in sync with the layout")
	flags.StringVar(&opts.ImagesDir, "images", "", "directory with pictures for generated cards")
	flags.BoolVar(&homePictures, "home-pictures", false, "use the Pictures folder in the home directory when --images is not set")
	flags.IntVar(&opts.Count, "count", 0, "number of generated cards (0 uses the saved setting)")
	flags.Float32Var(&opts.ColumnWidth, "column-width", 0, "column width in pixels (0 uses the saved setting)")
	flags.Int64Var(&opts.Seed, "seed", 0, "random seed for generated cards (0 picks one)")

	root.AddCommand(newOrderCmd())
	root.AddCommand(newItemsCmd())

	return root
}
