package tui

import (
	"bufio"
	"context"
	"io"
	"sync"
)

type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyQuit
)

const (
	keyEscape = 0x1b
	keyCtrlC  = 0x03
	keyCtrlD  = 0x04
)

// readKey decodes one key press. Arrow keys arrive as ESC [ A..D (or ESC O
// A..D in application cursor mode); a lone ESC counts as quit.
func readKey(in *bufio.Reader) (Key, error) {
	b, err := in.ReadByte()
	if err != nil {
		return KeyUnknown, err
	}

	switch b {
	case keyEscape:
		if in.Buffered() == 0 {
			return KeyQuit, nil
		}
		return readEscape(in)
	case '\r', '\n', ' ':
		return KeyEnter, nil
	case 'k', 'w', 'K', 'W':
		return KeyUp, nil
	case 'j', 's', 'J', 'S':
		return KeyDown, nil
	case 'h', 'a', 'H', 'A':
		return KeyLeft, nil
	case 'l', 'd', 'L', 'D':
		return KeyRight, nil
	case 'q', 'Q', keyCtrlC, keyCtrlD:
		return KeyQuit, nil
	default:
		return KeyUnknown, nil
	}
}

func readEscape(in *bufio.Reader) (Key, error) {
	prefix, err := in.ReadByte()
	if err != nil {
		return KeyUnknown, err
	}

	if prefix != '[' && prefix != 'O' {
		return KeyUnknown, nil
	}

	code, err := in.ReadByte()
	if err != nil {
		return KeyUnknown, err
	}

	switch code {
	case 'A':
		return KeyUp, nil
	case 'B':
		return KeyDown, nil
	case 'C':
		return KeyRight, nil
	case 'D':
		return KeyLeft, nil
	default:
		return KeyUnknown, nil
	}
}

type keyEvent struct {
	key Key
	err error
}

// keyReader reads keys on its own goroutine so that waiting for input can be
// abandoned when the context is cancelled.
type keyReader struct {
	in   *bufio.Reader
	keys chan keyEvent
	once sync.Once
}

func newKeyReader(in io.Reader) *keyReader {
	return &keyReader{
		in:   bufio.NewReader(in),
		keys: make(chan keyEvent),
	}
}

func (that *keyReader) Next(ctx context.Context) (Key, error) {
	that.once.Do(func() {
		go that.loop()
	})

	select {
	case <-ctx.Done():
		return KeyUnknown, ctx.Err()
	case event, ok := <-that.keys:
		if !ok {
			return KeyUnknown, io.EOF
		}
		return event.key, event.err
	}
}

func (that *keyReader) loop() {
	defer close(that.keys)

	for {
		key, err := readKey(that.in)
		that.keys <- keyEvent{key: key, err: err}

		if err != nil {
			return
		}
	}
}
