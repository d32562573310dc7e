package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
)

type GameUseCase interface {
	StartGame(finisher tictactoe.Finisher) (*tictactoe.Game, error)
	MakeTurn(ctx context.Context, game *tictactoe.Game, row, col int) error
	Scoreboard(ctx context.Context) (*entity.Scoreboard, error)
}

type scoreService interface {
	Record(ctx context.Context, result *entity.Result) error
	Scoreboard(ctx context.Context) (*entity.Scoreboard, error)
}

// PlayerSettings names a seat at the table.
type PlayerSettings struct {
	Name string
	Mark string
}

type GameSettings struct {
	BoardSize int
	WinCheck  tictactoe.WinCheck
	Players   []PlayerSettings
}

type gameUseCase struct {
	logger *slog.Logger

	settings     GameSettings
	scoreService scoreService
	now          func() time.Time
}

func NewGameUseCase(logger *slog.Logger, settings GameSettings, scoreService scoreService) GameUseCase {
	return &gameUseCase{
		logger:       logger,
		settings:     settings,
		scoreService: scoreService,
		now:          time.Now,
	}
}

// StartGame builds a classic game from the settings; finisher receives the
// outcome.
func (that *gameUseCase) StartGame(finisher tictactoe.Finisher) (*tictactoe.Game, error) {
	players := make([]entity.Player, 0, len(that.settings.Players))
	for _, settings := range that.settings.Players {
		mark, err := entity.ParseMark(settings.Mark)
		if err != nil {
			return nil, fmt.Errorf("invalid mark for %s: %w", settings.Name, err)
		}

		player, err := entity.NewPlayer(mark, settings.Name)
		if err != nil {
			return nil, fmt.Errorf("could not create player %s: %w", settings.Name, err)
		}

		players = append(players, player)
	}

	board, err := entity.NewBoard(that.settings.BoardSize)
	if err != nil {
		return nil, fmt.Errorf("could not create board: %w", err)
	}

	game, err := tictactoe.New(players, board, tictactoe.NewClassic(finisher),
		tictactoe.WithLogger(that.logger),
		tictactoe.WithWinCheck(that.settings.WinCheck),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create game: %w", err)
	}

	that.logger.Info("game started", "game_id", game.ID(), "board_size", board.Size(), "win_check", that.settings.WinCheck)

	return game, nil
}

// MakeTurn plays a turn and records the result once the game is over.
func (that *gameUseCase) MakeTurn(ctx context.Context, game *tictactoe.Game, row, col int) error {
	if err := game.MakeTurn(row, col); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	if !game.IsFinished() {
		return nil
	}

	if err := that.scoreService.Record(ctx, game.Result(that.now())); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

func (that *gameUseCase) Scoreboard(ctx context.Context) (*entity.Scoreboard, error) {
	scoreboard, err := that.scoreService.Scoreboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	return scoreboard, nil
}
