package tui

import (
	"context"
	"fmt"
	"time"
)

// Run drives the frame loop until the quit byte arrives or ctx is cancelled.
// Each iteration runs one Tick and then sleeps for whatever is left of the
// frame duration. The terminal is always released before Run returns, also
// when a widget panics; the panic is re-raised after restoration.
func (a *App) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			a.Close()
			panic(r)
		}
		if cerr := a.Close(); err == nil {
			err = cerr
		}
	}()

	for {
		if ctx.Err() != nil {
			a.logger.Info("run cancelled", "frames", a.frames)
			return nil
		}

		frameStart := time.Now()
		quit, err := a.Tick()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		// Sleep for remaining frame time to maintain consistent framerate
		elapsed := time.Since(frameStart)
		if elapsed < a.frameDuration {
			select {
			case <-time.After(a.frameDuration - elapsed):
			case <-ctx.Done():
				a.logger.Info("run cancelled", "frames", a.frames)
				return nil
			}
		}
	}
}

// Tick runs a single frame: pump at most one input byte, pick up a terminal
// resize, then clear, lay out, paint and render the diff. quit is true when
// the byte read was the quit byte; nothing is drawn in that case.
func (a *App) Tick() (quit bool, err error) {
	if a.closed {
		return true, ErrClosed
	}
	frameStart := time.Now()

	if a.onTick != nil {
		if err := a.onTick(a); err != nil {
			return false, err
		}
	}

	b, ok, err := a.input.Poll()
	if err != nil {
		return false, err
	}
	if ok {
		if b == a.quitByte {
			a.logger.Info("quit byte received", "frames", a.frames)
			return true, nil
		}
		if a.tree != nil {
			a.tree.HandleInput(a.root, b)
		}
	}

	resized, err := a.checkResize()
	if err != nil {
		return false, err
	}

	a.buffer.Clear()
	if a.tree != nil && a.tree.Contains(a.root) {
		if err := a.tree.Layout(a.root, a.buffer.Rect()); err != nil {
			return false, err
		}
		if err := a.tree.Paint(a.root, a.buffer); err != nil {
			return false, err
		}
	}

	var changed int
	if resized {
		changed, err = a.renderer.RenderFull(a.terminal, a.buffer)
	} else {
		changed, err = a.renderer.Render(a.terminal, a.buffer)
	}
	if err != nil {
		return false, err
	}

	a.frames++
	a.logger.Debug("frame",
		"n", a.frames,
		"changed", changed,
		"work", time.Since(frameStart))
	return false, nil
}

// checkResize compares the terminal size with the buffer and reallocates the
// buffer when they differ.
func (a *App) checkResize() (bool, error) {
	width, height, err := a.terminal.Size()
	if err != nil {
		return false, fmt.Errorf("query terminal size: %w", err)
	}
	if width == a.buffer.Width() && height == a.buffer.Height() {
		return false, nil
	}

	a.logger.Info("terminal resized",
		"from", fmt.Sprintf("%dx%d", a.buffer.Width(), a.buffer.Height()),
		"to", fmt.Sprintf("%dx%d", width, height))
	a.buffer.Resize(width, height)
	return true, nil
}
