package tui

import (
	"fmt"
	"io"
	"os"
)

// ETX is the byte a raw-mode terminal delivers for Ctrl+C.
const ETX byte = 3

// InputSource yields raw input bytes without blocking.
type InputSource interface {
	// Poll returns the next pending byte. ok is false when nothing is waiting.
	Poll() (b byte, ok bool, err error)
}

// FdInput polls a file descriptor, normally stdin in raw mode.
type FdInput struct {
	fd  int
	buf [1]byte
}

var _ InputSource = (*FdInput)(nil)

// NewFdInput creates an input source reading from r, which must be an *os.File.
func NewFdInput(r io.Reader) (*FdInput, error) {
	f, ok := r.(*os.File)
	if !ok {
		return nil, fmt.Errorf("input source: %w", ErrNotTerminal)
	}
	return &FdInput{fd: int(f.Fd())}, nil
}

// Poll reads one byte if the descriptor is readable right now.
func (in *FdInput) Poll() (byte, bool, error) {
	ready, err := pollFd(in.fd, 0)
	if err != nil {
		return 0, false, fmt.Errorf("poll input: %w", err)
	}
	if !ready {
		return 0, false, nil
	}
	n, err := readFd(in.fd, in.buf[:])
	if err != nil {
		return 0, false, fmt.Errorf("read input: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}
	return in.buf[0], true, nil
}

// ScriptedInput replays a fixed byte sequence, one byte per Poll.
// Useful for tests and for headless runs.
type ScriptedInput struct {
	data []byte
	pos  int
	err  error
}

var _ InputSource = (*ScriptedInput)(nil)

// NewScriptedInput creates a source that yields data and then reports no input.
func NewScriptedInput(data ...byte) *ScriptedInput {
	return &ScriptedInput{data: data}
}

// Feed appends bytes to the pending input.
func (s *ScriptedInput) Feed(data ...byte) {
	s.data = append(s.data, data...)
}

// FeedString appends the bytes of str to the pending input.
func (s *ScriptedInput) FeedString(str string) {
	s.data = append(s.data, str...)
}

// FailWith makes the next Poll after the pending bytes return err.
func (s *ScriptedInput) FailWith(err error) {
	s.err = err
}

// Pending returns the number of bytes not yet consumed.
func (s *ScriptedInput) Pending() int {
	return len(s.data) - s.pos
}

// Poll returns the next scripted byte.
func (s *ScriptedInput) Poll() (byte, bool, error) {
	if s.pos < len(s.data) {
		b := s.data[s.pos]
		s.pos++
		return b, true, nil
	}
	if s.err != nil {
		err := s.err
		s.err = nil
		return 0, false, err
	}
	return 0, false, nil
}
