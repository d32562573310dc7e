package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
)

type gameUseCase interface {
	StartGame(finisher tictactoe.Finisher) (*tictactoe.Game, error)
	MakeTurn(ctx context.Context, game *tictactoe.Game, row, col int) error
	Scoreboard(ctx context.Context) (*entity.Scoreboard, error)
}

const (
	menuStart = iota
	menuScores
	menuExit
)

var menuItems = []string{"Start new game", "Scoreboard", "Exit"}

// App is the interactive front end. It holds no game rules: every turn goes
// through the use case.
type App struct {
	logger *slog.Logger

	useCase gameUseCase
	keys    *keyReader
	screen  *screen
}

func New(logger *slog.Logger, useCase gameUseCase, in io.Reader, out *termenv.Output) *App {
	return &App{
		logger:  logger.With("component", "tui"),
		useCase: useCase,
		keys:    newKeyReader(in),
		screen:  newScreen(out),
	}
}

// Run shows the main menu until the user exits, input ends or ctx is done.
func (that *App) Run(ctx context.Context) error {
	that.screen.out.HideCursor()
	defer that.screen.out.ShowCursor()

	for {
		choice, err := that.menu(ctx)
		if err != nil {
			return ignoreClosed(err)
		}

		switch choice {
		case menuStart:
			err = that.play(ctx)
		case menuScores:
			err = that.scores(ctx)
		case menuExit:
			return nil
		}

		if err != nil {
			return ignoreClosed(err)
		}
	}
}

func (that *App) menu(ctx context.Context) (int, error) {
	selected := menuStart

	for {
		that.screen.drawMenu(menuItems, selected)

		key, err := that.keys.Next(ctx)
		if err != nil {
			return 0, err
		}

		switch key {
		case KeyUp:
			selected = (selected - 1 + len(menuItems)) % len(menuItems)
		case KeyDown:
			selected = (selected + 1) % len(menuItems)
		case KeyEnter:
			return selected, nil
		case KeyQuit:
			return menuExit, nil
		}
	}
}

func (that *App) play(ctx context.Context) error {
	finisher := &finishScreen{}

	game, err := that.useCase.StartGame(finisher)
	if err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	size := game.Board().Size()
	row, col := 0, 0

	for {
		that.screen.drawGame(game, row, col, finisher.status)

		key, err := that.keys.Next(ctx)
		if err != nil {
			return err
		}

		if game.IsFinished() {
			return nil
		}

		switch key {
		case KeyUp:
			row = (row - 1 + size) % size
		case KeyDown:
			row = (row + 1) % size
		case KeyLeft:
			col = (col - 1 + size) % size
		case KeyRight:
			col = (col + 1) % size
		case KeyEnter:
			if err = that.useCase.MakeTurn(ctx, game, row, col); err != nil {
				that.logger.Error("turn failed", "game_id", game.ID(), "row", row, "col", col, "error", err)
				if !game.IsFinished() {
					return fmt.Errorf("turn failed: %w", err)
				}
			}
		case KeyQuit:
			that.logger.Info("game abandoned", "game_id", game.ID())
			return nil
		}
	}
}

func (that *App) scores(ctx context.Context) error {
	scoreboard, err := that.useCase.Scoreboard(ctx)
	if err != nil {
		return fmt.Errorf("could not load scoreboard: %w", err)
	}

	that.screen.drawScoreboard(scoreboard)

	_, err = that.keys.Next(ctx)

	return err
}

func ignoreClosed(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
