package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// AppOption is a functional option for configuring an App.
type AppOption func(*App) error

// WithFrameRate sets the target frame rate for the frame loop.
// Default is 60 fps (16ms frame duration). Valid range is 1-240 fps.
func WithFrameRate(fps int) AppOption {
	return func(a *App) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		a.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithTerminal renders to term instead of stdout.
func WithTerminal(term Terminal) AppOption {
	return func(a *App) error {
		if term == nil {
			return errors.New("terminal must not be nil")
		}
		a.terminal = term
		return nil
	}
}

// WithInput reads input bytes from src instead of stdin.
func WithInput(src InputSource) AppOption {
	return func(a *App) error {
		if src == nil {
			return errors.New("input source must not be nil")
		}
		a.input = src
		return nil
	}
}

// WithLogger sets the logger for lifecycle and per-frame diagnostics.
// By default the app logs through the shared debug logger.
func WithLogger(l *log.Logger) AppOption {
	return func(a *App) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}
		a.logger = l
		return nil
	}
}

// WithQuitByte sets the input byte that ends Run. Default is ETX (Ctrl+C).
func WithQuitByte(b byte) AppOption {
	return func(a *App) error {
		a.quitByte = b
		return nil
	}
}

// WithTree sets the tree and root node to display.
func WithTree(tree *Tree, root NodeID) AppOption {
	return func(a *App) error {
		if tree == nil {
			return errors.New("tree must not be nil")
		}
		if !tree.Contains(root) {
			return fmt.Errorf("root %s: %w", root, ErrInvalidNode)
		}
		a.SetRoot(tree, root)
		return nil
	}
}

// WithTickHook registers fn to run at the start of every tick, before input
// is pumped. Returning an error aborts the tick. Hot reload uses it to swap
// the tree between frames.
func WithTickHook(fn func(a *App) error) AppOption {
	return func(a *App) error {
		a.onTick = fn
		return nil
	}
}
