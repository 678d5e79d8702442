package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	tui "github.com/grindlemire/minitui"
	"github.com/grindlemire/minitui/internal/config"
	"github.com/grindlemire/minitui/internal/debug"
	"github.com/grindlemire/minitui/internal/scene"
)

func newRunCmd(load configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Display a layout in the terminal until Ctrl+C",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd, map[string]string{
				"layout.file":   "layout",
				"layout.demo":   "demo",
				"layout.watch":  "watch",
				"ui.frame_rate": "fps",
				"log.file":      "log",
				"log.level":     "log-level",
			})
			if err != nil {
				return err
			}

			// Raw mode turns Ctrl+C into an input byte, so only signals
			// sent from outside end up here.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runUI(ctx, cfg)
		},
	}

	fs := cmd.Flags()
	fs.String("layout", "", "TOML layout description to display")
	fs.String("demo", "dashboard", "built-in layout when no file is given (dashboard, login)")
	fs.BoolP("watch", "w", false, "reload the layout file when it changes")
	fs.Int("fps", 60, "target frame rate (1-240)")
	fs.String("log", "", "debug log file (default $MINITUI_DEBUG)")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	return cmd
}

func runUI(ctx context.Context, cfg *config.Config) error {
	if err := debug.Init(cfg.Log.File, cfg.Log.Level); err != nil {
		return err
	}
	defer debug.Close()
	logger := debug.Logger()

	s, err := loadScene(cfg.Layout.File, cfg.Layout.Demo)
	if err != nil {
		return err
	}

	opts := []tui.AppOption{
		tui.WithFrameRate(cfg.UI.FrameRate),
		tui.WithQuitByte(byte(cfg.UI.QuitByte)),
		tui.WithLogger(logger),
		tui.WithTree(s.Tree, s.Root),
	}

	if cfg.Layout.Watch {
		w, err := scene.NewWatcher(cfg.Layout.File)
		if err != nil {
			return err
		}
		defer w.Close()
		opts = append(opts, tui.WithTickHook(reloadHook(w, logger)))
	}

	app, err := tui.NewApp(opts...)
	if err != nil {
		return err
	}
	return app.Run(ctx)
}

// reloadHook swaps in the rebuilt tree whenever the watched file changes.
// A file that fails to load is logged and the current tree stays up.
func reloadHook(w *scene.Watcher, logger *log.Logger) func(*tui.App) error {
	return func(a *tui.App) error {
		s, changed, err := w.Poll()
		if err != nil {
			logger.Warn("layout reload failed", "path", w.Path(), "err", err)
			return nil
		}
		if changed {
			logger.Info("layout reloaded", "path", w.Path(), "nodes", s.Tree.Len())
			a.SetRoot(s.Tree, s.Root)
		}
		return nil
	}
}
