package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

// Mark is the content of a single board cell.
type Mark uint8

const (
	Empty Mark = iota
	Nought
	Cross
)

func (that Mark) String() string {
	switch that {
	case Nought:
		return "O"
	case Cross:
		return "X"
	default:
		return ""
	}
}

// IsPlayerMark reports whether a player may own the mark.
func (that Mark) IsPlayerMark() bool {
	return that == Nought || that == Cross
}

func (that Mark) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	mark, err := ParseMark(string(text))
	if err != nil {
		return err
	}

	*that = mark

	return nil
}

// ParseMark converts "X", "O" or "" to a Mark.
func ParseMark(s string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "":
		return Empty, nil
	case "O":
		return Nought, nil
	case "X":
		return Cross, nil
	default:
		return Empty, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, s)
	}
}
