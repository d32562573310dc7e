package tictactoe

import (
	"fmt"
	"io"
	"os"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

// Classic wins on any full row, column or diagonal of one mark.
type Classic struct {
	finisher Finisher
}

// NewClassic returns the classic variant. A nil finisher announces the
// outcome on stdout.
func NewClassic(finisher Finisher) *Classic {
	if finisher == nil {
		finisher = NewAnnouncer(os.Stdout)
	}

	return &Classic{finisher: finisher}
}

// CheckForWinner scans rows, then columns, then the main and secondary
// diagonals, and returns the mark of the first complete line.
func (that *Classic) CheckForWinner(board *entity.Board) (entity.Mark, bool) {
	directions := []func() [][]entity.Mark{
		board.Rows,
		board.Cols,
		func() [][]entity.Mark { return [][]entity.Mark{board.MainDiagonal()} },
		func() [][]entity.Mark { return [][]entity.Mark{board.SecondaryDiagonal()} },
	}

	for _, lines := range directions {
		for _, line := range lines() {
			if isWinningLine(line) {
				return line[0], true
			}
		}
	}

	return entity.Empty, false
}

func (that *Classic) EndWithWinner(winner entity.Player) {
	that.finisher.EndWithWinner(winner)
}

func (that *Classic) EndWithTie() {
	that.finisher.EndWithTie()
}

func isWinningLine(line []entity.Mark) bool {
	if len(line) == 0 || line[0] == entity.Empty {
		return false
	}

	for _, mark := range line[1:] {
		if mark != line[0] {
			return false
		}
	}

	return true
}

// Announcer writes the outcome as a single line of text.
type Announcer struct {
	out io.Writer
}

func NewAnnouncer(out io.Writer) *Announcer {
	return &Announcer{out: out}
}

func (that *Announcer) EndWithWinner(winner entity.Player) {
	fmt.Fprintf(that.out, "And winner is %s\n", winner.Name())
}

func (that *Announcer) EndWithTie() {
	fmt.Fprintln(that.out, "No winner")
}
