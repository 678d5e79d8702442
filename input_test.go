package tui

import (
	"errors"
	"strings"
	"testing"
)

func TestScriptedInput(t *testing.T) {
	in := NewScriptedInput('a', 'b')
	in.FeedString("c")

	var got []byte
	for {
		b, ok, err := in.Poll()
		if err != nil {
			t.Fatalf("Poll() error = %v", err)
		}
		if !ok {
			break
		}
		got = append(got, b)
	}
	if string(got) != "abc" {
		t.Errorf("Poll() sequence = %q, want %q", got, "abc")
	}
	if in.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", in.Pending())
	}

	boom := errors.New("boom")
	in.FailWith(boom)
	if _, _, err := in.Poll(); !errors.Is(err, boom) {
		t.Errorf("Poll() error = %v, want %v", err, boom)
	}
	if _, ok, err := in.Poll(); ok || err != nil {
		t.Errorf("Poll() after error = %v, %v; want false, nil", ok, err)
	}
}

func TestNewFdInput_RequiresFile(t *testing.T) {
	if _, err := NewFdInput(strings.NewReader("x")); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("NewFdInput(reader) error = %v, want %v", err, ErrNotTerminal)
	}
}
