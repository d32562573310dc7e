package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
)

const (
	titleColor  = "#818cf8"
	crossColor  = "#f472b6"
	noughtColor = "#38bdf8"
	hintColor   = "#9ca3af"

	// lines end with CR LF because the terminal is in raw mode
	newline = "\r\n"
)

const (
	welcome   = "Welcome to Tic-Tac-Toe game!"
	movesHint = "arrows/hjkl move, enter place, q menu"
	anyKey    = "Press any key to return to the menu"
)

// screen draws every view from scratch on each update.
type screen struct {
	out *termenv.Output
}

func newScreen(out *termenv.Output) *screen {
	return &screen{out: out}
}

func (that *screen) println(s string) {
	fmt.Fprint(that.out, s+newline)
}

func (that *screen) title() {
	that.out.ClearScreen()
	that.println(that.out.String(welcome).Bold().Foreground(that.out.Color(titleColor)).String())
	that.println("")
}

func (that *screen) hint(s string) {
	that.println(that.out.String(s).Faint().Foreground(that.out.Color(hintColor)).String())
}

func (that *screen) drawMenu(items []string, selected int) {
	that.title()

	for i, item := range items {
		marker := "  "
		if i == selected {
			marker = "> "
			item = that.out.String(item).Bold().String()
		}
		that.println("   " + marker + item)
		that.println("")
	}
}

// drawGame renders the board with the cursor on (row, col). status replaces
// the turn line once the game is over.
func (that *screen) drawGame(game *tictactoe.Game, row, col int, status string) {
	that.title()

	names := make([]string, 0, len(game.Players()))
	for _, player := range game.Players() {
		names = append(names, fmt.Sprintf("%s (%s)", player.Name(), that.mark(player.Mark())))
	}
	that.println("  " + strings.Join(names, " vs "))
	that.println("")

	board := game.Board()
	separator := "  " + strings.Repeat("---+", board.Size()-1) + "---"

	for r, marks := range board.Rows() {
		cells := make([]string, 0, len(marks))
		for c, mark := range marks {
			cell := " " + that.mark(mark) + " "
			if mark == entity.Empty {
				cell = "   "
			}
			if r == row && c == col && !game.IsFinished() {
				cell = that.out.String(cell).Reverse().String()
			}
			cells = append(cells, cell)
		}

		that.println("  " + strings.Join(cells, "|"))
		if r < board.Size()-1 {
			that.println(separator)
		}
	}

	that.println("")

	if status != "" {
		that.println("  " + that.out.String(status).Bold().String())
		that.hint("  " + anyKey)
		return
	}

	current := game.CurrentPlayer()
	that.println(fmt.Sprintf("  %s (%s) to move", current.Name(), that.mark(current.Mark())))
	that.hint("  " + movesHint)
}

func (that *screen) drawScoreboard(scoreboard *entity.Scoreboard) {
	that.title()

	if scoreboard.Games == 0 {
		that.println("  No games recorded yet")
	} else {
		that.println(fmt.Sprintf("  Games played: %d, ties: %d", scoreboard.Games, scoreboard.Ties))
		that.println("")
		for _, score := range scoreboard.Scores {
			that.println(fmt.Sprintf("  %-20s %d", score.Name, score.Wins))
		}
	}

	that.println("")
	that.hint("  " + anyKey)
}

func (that *screen) mark(mark entity.Mark) string {
	switch mark {
	case entity.Cross:
		return that.out.String(mark.String()).Bold().Foreground(that.out.Color(crossColor)).String()
	case entity.Nought:
		return that.out.String(mark.String()).Bold().Foreground(that.out.Color(noughtColor)).String()
	default:
		return mark.String()
	}
}

// finishScreen turns the game outcome into the status line of the board view.
type finishScreen struct {
	status string
}

func (that *finishScreen) EndWithWinner(winner entity.Player) {
	that.status = fmt.Sprintf("And winner is %s", winner.Name())
}

func (that *finishScreen) EndWithTie() {
	that.status = "No winner"
}
