package tui

import "errors"

// Close restores the terminal to its original state: the cursor is shown,
// the alternate screen left (which also resets text attributes) and raw mode
// exited. Close is idempotent.
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	err := a.restore()
	a.logger.Info("app closed", "frames", a.frames)
	return err
}

// restore undoes whatever setupTerminal acquired, continuing past failures so
// that raw mode is released even if the screen could not be restored.
func (a *App) restore() error {
	var errs []error

	if a.altScreen {
		if err := a.terminal.ShowCursor(); err != nil {
			errs = append(errs, err)
		}
		if err := a.terminal.ExitAltScreen(); err != nil {
			errs = append(errs, err)
		}
		a.altScreen = false
	}

	if a.rawMode {
		if err := a.terminal.ExitRawMode(); err != nil {
			errs = append(errs, err)
		}
		a.rawMode = false
	}

	return errors.Join(errs...)
}
