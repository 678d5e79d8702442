//go:build linux

package tui

import "golang.org/x/sys/unix"

const (
	ioctlGetTermios = unix.TCGETS
	// TCSETSF waits for output to drain and discards pending input, like TCSAFLUSH.
	ioctlSetTermios = unix.TCSETSF
)
