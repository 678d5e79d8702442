package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding a default log file path.
const EnvVar = "MINITUI_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = newLogger(io.Discard, log.InfoLevel)
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Level:           level,
		Prefix:          "minitui",
	})
}

// Init directs the shared logger to path at the given level ("debug",
// "info", "warn", "error"). An empty path falls back to $MINITUI_DEBUG; if
// that is unset too, logging stays disabled.
func Init(path, level string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return nil
	}

	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("parse log level %q: %w", level, err)
		}
		lvl = parsed
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}

	closeLocked()
	logFile = f
	logger = newLogger(f, lvl)
	return nil
}

// Logger returns the shared logger. It is never nil.
func Logger() *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Enabled reports whether log output goes to a file.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return logFile != nil
}

// Close closes the log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = newLogger(io.Discard, log.InfoLevel)
	if logFile == nil {
		return nil
	}
	err := logFile.Sync()
	if cerr := logFile.Close(); err == nil {
		err = cerr
	}
	logFile = nil
	return err
}
