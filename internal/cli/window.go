package cli

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/masonry/internal/ui"
)

// AppID identifies the demo for Fyne preferences storage
const AppID = "com.ytget.masonry-demo"

// launchWindow runs the Fyne event loop. Cancelling ctx quits the app.
func launchWindow(ctx context.Context, opts ui.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	a := app.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewCompactTheme())

	w := a.NewWindow("Masonry")
	w.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	root, err := ui.NewRootUI(w, a, opts, logger.With("component", "ui"))
	if err != nil {
		return err
	}
	defer root.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			logger.Debug("interrupted, quitting")
			fyne.Do(a.Quit)
		case <-stop:
		}
	}()

	prog.done("Window ready")
	w.ShowAndRun()
	return ctx.Err()
}
