package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/minitui/internal/debug"
)

// DefaultFrameRate is the target frame rate when none is configured.
const DefaultFrameRate = 60

// App manages the application lifecycle: terminal setup, the frame loop and
// rendering. It is single-threaded: Tick and Run must be called from one
// goroutine.
type App struct {
	terminal Terminal
	input    InputSource
	buffer   *Buffer
	renderer *Renderer
	logger   *log.Logger

	tree *Tree
	root NodeID

	frameDuration time.Duration // Duration per frame (default 16ms = 60fps)
	quitByte      byte
	closed        bool
	rawMode       bool // Raw mode entered by this app, released by Close
	altScreen     bool

	onTick func(a *App) error
	frames int
}

// NewApp creates a new application with the terminal set up for TUI usage.
// Unless WithTerminal/WithInput are given it drives stdin/stdout, which must
// be a terminal. The terminal is put into raw mode and the alternate screen,
// cleared and its cursor hidden. Any failure restores what was acquired.
func NewApp(opts ...AppOption) (*App, error) {
	app := &App{
		renderer:      NewRenderer(),
		logger:        debug.Logger(),
		frameDuration: time.Second / DefaultFrameRate,
		quitByte:      ETX,
	}

	// Apply options (may override terminal, input and defaults above)
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.terminal == nil {
		ansi := NewANSITerminal(os.Stdout, os.Stdin)
		if !ansi.IsTerminal() {
			return nil, fmt.Errorf("stdin/stdout: %w", ErrNotTerminal)
		}
		app.terminal = ansi
	}
	if app.input == nil {
		in, err := NewFdInput(os.Stdin)
		if err != nil {
			return nil, err
		}
		app.input = in
	}

	if err := app.setupTerminal(); err != nil {
		app.restore()
		return nil, err
	}

	app.logger.Info("app started",
		"width", app.buffer.Width(),
		"height", app.buffer.Height(),
		"frame", app.frameDuration)
	return app, nil
}

// setupTerminal acquires the terminal: raw mode, alternate screen, blank
// screen, hidden cursor, and a buffer matching its size.
func (a *App) setupTerminal() error {
	if err := a.terminal.EnterRawMode(); err != nil {
		return err
	}
	a.rawMode = true

	width, height, err := a.terminal.Size()
	if err != nil {
		return fmt.Errorf("query terminal size: %w", err)
	}

	if err := a.terminal.EnterAltScreen(); err != nil {
		return fmt.Errorf("enter alternate screen: %w", err)
	}
	a.altScreen = true

	if err := a.terminal.Clear(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	if err := a.terminal.HideCursor(); err != nil {
		return fmt.Errorf("hide cursor: %w", err)
	}

	// The screen is blank, which is exactly what a fresh buffer assumes.
	a.buffer = NewBuffer(width, height)
	a.renderer.Reset()
	return nil
}

// SetRoot replaces the tree the app lays out and paints. It takes effect on
// the next Tick. A zero root shows an empty screen.
func (a *App) SetRoot(tree *Tree, root NodeID) {
	a.tree = tree
	a.root = root
}

// Root returns the tree and root node currently displayed.
func (a *App) Root() (*Tree, NodeID) {
	return a.tree, a.root
}

// Buffer returns the app's frame buffer.
func (a *App) Buffer() *Buffer {
	return a.buffer
}

// Terminal returns the terminal the app renders to.
func (a *App) Terminal() Terminal {
	return a.terminal
}

// Logger returns the app's logger.
func (a *App) Logger() *log.Logger {
	return a.logger
}

// FrameDuration returns the target duration of one frame.
func (a *App) FrameDuration() time.Duration {
	return a.frameDuration
}

// Frames returns the number of completed ticks.
func (a *App) Frames() int {
	return a.frames
}

// Snapshot returns the current frame as text with trailing spaces trimmed.
func (a *App) Snapshot() string {
	if a.buffer == nil {
		return ""
	}
	return a.buffer.StringTrimmed()
}
