package tictactoe

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

// boardFrom builds a board from rows written as "XO.".
func boardFrom(t *testing.T, rows ...string) *entity.Board {
	t.Helper()

	board, err := entity.NewBoard(len(rows))
	require.NoError(t, err)

	for r, row := range rows {
		require.Len(t, row, len(rows))
		for c, ch := range row {
			mark := entity.Empty
			switch ch {
			case 'X':
				mark = entity.Cross
			case 'O':
				mark = entity.Nought
			}
			require.NoError(t, board.PlaceMark(r, c, mark))
		}
	}

	return board
}

func TestClassic_CheckForWinner(t *testing.T) {
	classic := NewClassic(&mockFinisher{})

	cases := []struct {
		name   string
		rows   []string
		winner entity.Mark
		ok     bool
	}{
		{name: "Row", rows: []string{"XXX", "OOX", "XOO"}, winner: entity.Cross, ok: true},
		{name: "Column", rows: []string{"OXX", "OXX", "O.."}, winner: entity.Nought, ok: true},
		{name: "Main diagonal", rows: []string{"X.O", ".XO", "O.X"}, winner: entity.Cross, ok: true},
		{name: "Secondary diagonal", rows: []string{"X.O", "XO.", "O.X"}, winner: entity.Nought, ok: true},
		{name: "Row and column of the same mark", rows: []string{"O.X", "OXX", "OOO"}, winner: entity.Nought, ok: true},
		{name: "Lower row index first", rows: []string{"XXX", "...", "OOO"}, winner: entity.Cross, ok: true},
		{name: "Lower column index first", rows: []string{"XO.", "XO.", "XO."}, winner: entity.Cross, ok: true},
		{name: "Empty line does not win", rows: []string{"...", "...", "..."}},
		{name: "Tie", rows: []string{"XOX", "XOO", "OXX"}},
		{name: "Larger board", rows: []string{"XO..", ".XO.", "..XO", "O..X"}, winner: entity.Cross, ok: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Given: a board
			board := boardFrom(t, tc.rows...)

			// When: the classic win condition is checked
			winner, ok := classic.CheckForWinner(board)

			// Then: the first complete line in scan order decides
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.winner, winner)
		})
	}
}

func TestGame_CheckForWinner(t *testing.T) {
	// Given: a full board where only row 0 is complete
	cross, nought := newPlayers(t)
	board := boardFrom(t, "XXX", "OOX", "XOO")
	game, err := New([]entity.Player{cross, nought}, board, NewClassic(&mockFinisher{}))
	require.NoError(t, err)

	// When: the game looks for a winner
	winner, ok := game.CheckForWinner()

	// Then: the cross player wins
	require.True(t, ok)
	assert.Equal(t, cross, winner)
}

func TestAnnouncer(t *testing.T) {
	var out bytes.Buffer
	classic := NewClassic(NewAnnouncer(&out))

	winner, err := entity.NewPlayer(entity.Cross, "Alice")
	require.NoError(t, err)

	classic.EndWithWinner(winner)
	classic.EndWithTie()

	assert.Equal(t, "And winner is Alice\nNo winner\n", out.String())
}

func TestParseWinCheck(t *testing.T) {
	winCheck, err := ParseWinCheck("")
	require.NoError(t, err)
	assert.Equal(t, WinCheckBoardFull, winCheck)

	winCheck, err = ParseWinCheck("every-turn")
	require.NoError(t, err)
	assert.Equal(t, WinCheckEveryTurn, winCheck)

	_, err = ParseWinCheck("sometimes")
	require.ErrorIs(t, err, ErrUnknownWinCheck)
}
