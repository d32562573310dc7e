package tui

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// MakeRaw switches f into raw mode when it is a terminal and returns the
// function that restores it. Non-terminals are left untouched.
func MakeRaw(f *os.File) (func(), error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("could not enter raw mode: %w", err)
	}

	return func() {
		_ = term.Restore(fd, state)
	}, nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
