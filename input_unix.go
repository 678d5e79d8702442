//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package tui

import (
	"time"

	"golang.org/x/sys/unix"
)

// pollFd reports whether fd has data to read, waiting at most timeout.
// A zero timeout makes it a non-blocking check.
func pollFd(fd int, timeout time.Duration) (ready bool, err error) {
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	tv := unix.NsecToTimeval(timeout.Nanoseconds())

	n, err := unix.Select(fd+1, &readFds, nil, nil, &tv)
	if err != nil {
		// EINTR is expected when signals arrive
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}

	return n > 0, nil
}

// readFd reads from fd. EAGAIN and EINTR count as no data.
func readFd(fd int, p []byte) (int, error) {
	n, err := unix.Read(fd, p)
	if err == unix.EAGAIN || err == unix.EINTR {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}
