package tictactoe

import (
	"errors"
	"fmt"
)

// WinCheck selects when the engine looks for a winning line.
type WinCheck string

const (
	// WinCheckBoardFull only looks once no empty cells are left.
	WinCheckBoardFull WinCheck = "board-full"
	// WinCheckEveryTurn looks after every placement.
	WinCheckEveryTurn WinCheck = "every-turn"
)

var ErrUnknownWinCheck = errors.New("unknown win check policy")

func ParseWinCheck(s string) (WinCheck, error) {
	switch WinCheck(s) {
	case WinCheckBoardFull, "":
		return WinCheckBoardFull, nil
	case WinCheckEveryTurn:
		return WinCheckEveryTurn, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownWinCheck, s)
	}
}
