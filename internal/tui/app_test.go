package tui

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/repository"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/service"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/usecase"
)

const (
	up    = "\x1b[A"
	down  = "\x1b[B"
	right = "\x1b[C"
	left  = "\x1b[D"
	enter = "\r"
)

func runApp(t *testing.T, settings usecase.GameSettings, input string) string {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	scoreService := service.NewScoreService(logger, repository.NewMemoryResultRepository())
	useCase := usecase.NewGameUseCase(logger, settings, scoreService)

	var out bytes.Buffer
	app := New(logger, useCase, strings.NewReader(input), termenv.NewOutput(&out, termenv.WithProfile(termenv.Ascii)))

	require.NoError(t, app.Run(context.Background()))

	return out.String()
}

func settingsFor(size int, winCheck tictactoe.WinCheck) usecase.GameSettings {
	return usecase.GameSettings{
		BoardSize: size,
		WinCheck:  winCheck,
		Players: []usecase.PlayerSettings{
			{Name: "Alice", Mark: "X"},
			{Name: "Bob", Mark: "O"},
		},
	}
}

func TestApp_Run(t *testing.T) {
	t.Run("Shows the main menu and exits", func(t *testing.T) {
		// When: the user moves to Exit and confirms
		output := runApp(t, settingsFor(3, tictactoe.WinCheckBoardFull), down+down+enter)

		// Then: the menu was drawn
		assert.Contains(t, output, welcome)
		assert.Contains(t, output, "> Start new game")
		assert.Contains(t, output, "> Exit")
	})

	t.Run("Plays a game to a winner and shows it on the scoreboard", func(t *testing.T) {
		// Given: a 3x3 game that detects wins immediately
		input := strings.Join([]string{
			enter,                        // start new game
			enter,                        // X (0,0)
			down + right + enter,         // O (1,1)
			up + enter,                   // X (0,1)
			down + left + enter,          // O (1,0)
			up + right + right + enter,   // X (0,2)
			"x",                          // back to menu
			down + enter,                 // scoreboard
			"x",                          // back to menu
			"q",                          // exit
		}, "")

		// When: the session runs
		output := runApp(t, settingsFor(3, tictactoe.WinCheckEveryTurn), input)

		// Then: the winner is announced and counted
		assert.Contains(t, output, "Alice (X) vs Bob (O)")
		assert.Contains(t, output, "Bob (O) to move")
		assert.Contains(t, output, " X | X | X ")
		assert.Contains(t, output, "And winner is Alice")
		assert.Contains(t, output, "Games played: 1, ties: 0")
		assert.Contains(t, output, "Alice                1")
	})

	t.Run("Reports a tie", func(t *testing.T) {
		// X O X
		// X O O
		// O X X
		input := strings.Join([]string{
			enter,
			enter,                 // X (0,0)
			right + enter,         // O (0,1)
			right + enter,         // X (0,2)
			down + left + enter,   // O (1,1)
			left + enter,          // X (1,0)
			right + right + enter, // O (1,2)
			down + left + enter,   // X (2,1)
			left + enter,          // O (2,0)
			right + right + enter, // X (2,2)
			"x",
			"q",
		}, "")

		output := runApp(t, settingsFor(3, tictactoe.WinCheckBoardFull), input)

		assert.Contains(t, output, "No winner")
		assert.NotContains(t, output, "And winner is")
	})

	t.Run("Quitting a game returns to the menu", func(t *testing.T) {
		output := runApp(t, settingsFor(3, tictactoe.WinCheckBoardFull), enter+enter+"q"+down+enter+"x"+"q")

		assert.Contains(t, output, "Bob (O) to move")
		assert.Contains(t, output, "No games recorded yet")
	})

	t.Run("End of input exits cleanly", func(t *testing.T) {
		output := runApp(t, settingsFor(1, tictactoe.WinCheckBoardFull), enter+enter)

		assert.Contains(t, output, "And winner is Alice")
	})

	t.Run("Start errors are returned", func(t *testing.T) {
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		scoreService := service.NewScoreService(logger, repository.NewMemoryResultRepository())
		useCase := usecase.NewGameUseCase(logger, settingsFor(0, tictactoe.WinCheckBoardFull), scoreService)

		var out bytes.Buffer
		app := New(logger, useCase, strings.NewReader(enter), termenv.NewOutput(&out, termenv.WithProfile(termenv.Ascii)))

		err := app.Run(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not start game")
	})
}
