//go:build !(linux || darwin || dragonfly || freebsd || netbsd || openbsd)

package tui

import (
	"errors"
	"time"
)

var errUnsupportedPlatform = errors.New("raw terminal mode is not supported on this platform")

type rawModeState struct{}

func enableRawMode(fd int) (*rawModeState, error) {
	return nil, errUnsupportedPlatform
}

func disableRawMode(fd int, state *rawModeState) error {
	return nil
}

func getTerminalSize(fd int) (width, height int, err error) {
	return 0, 0, errUnsupportedPlatform
}

func pollFd(fd int, timeout time.Duration) (ready bool, err error) {
	return false, errUnsupportedPlatform
}

func readFd(fd int, p []byte) (int, error) {
	return 0, errUnsupportedPlatform
}
