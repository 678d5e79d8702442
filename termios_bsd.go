//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package tui

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios = unix.TIOCGETA
	// TIOCSETAF waits for output to drain and discards pending input, like TCSAFLUSH.
	ioctlSetTermios = unix.TIOCSETAF
)
