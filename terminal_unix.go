//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package tui

import (
	"golang.org/x/sys/unix"
)

// rawModeState stores the original terminal state for restoration.
type rawModeState struct {
	termios unix.Termios
}

// enableRawMode puts the terminal into raw mode and returns the previous state.
func enableRawMode(fd int) (*rawModeState, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, err
	}

	state := &rawModeState{termios: *termios}

	// Turn off:
	// - IGNBRK, BRKINT: don't ignore break or turn it into SIGINT
	// - PARMRK, INPCK, ISTRIP: no parity marking/checking, keep the 8th bit
	// - INLCR, IGNCR, ICRNL: deliver CR and LF untranslated
	// - IXON: disable software flow control (Ctrl+S, Ctrl+Q)
	termios.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.INPCK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON

	// Turn off:
	// - OPOST: disable output processing
	termios.Oflag &^= unix.OPOST

	// Turn off:
	// - ECHO, ECHONL: don't echo input characters
	// - ICANON: read byte-by-byte instead of line-by-line
	// - ISIG: Ctrl+C arrives as byte 3 instead of SIGINT
	// - IEXTEN: disable extended input processing
	termios.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN

	// 8-bit characters, no parity
	termios.Cflag &^= unix.CSIZE | unix.PARENB
	termios.Cflag |= unix.CS8

	// VMIN = 0, VTIME = 0: read returns immediately, with or without a byte
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, termios); err != nil {
		return nil, err
	}

	return state, nil
}

// disableRawMode restores the terminal to its previous state.
func disableRawMode(fd int, state *rawModeState) error {
	if state == nil {
		return nil
	}
	return unix.IoctlSetTermios(fd, ioctlSetTermios, &state.termios)
}

// getTerminalSize returns the terminal dimensions.
func getTerminalSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
