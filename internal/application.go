package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/config"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/repository"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/service"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/tui"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/usecase"
)

// RunApp - runs the interactive game on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameUseCase, closeStorage, err := newGameUseCase(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	restore, err := tui.MakeRaw(os.Stdin)
	if err != nil {
		return fmt.Errorf("could not prepare terminal: %w", err)
	}
	defer restore()

	out := termenv.NewOutput(os.Stdout)
	if tui.IsTerminal(os.Stdout) {
		out.AltScreen()
		defer out.ExitAltScreen()
	}

	log.Info("Starting game session", "board_size", conf.BoardSize, "win_check", conf.WinCheck, "redis", conf.Redis.Enabled)

	if err = tui.New(logger, gameUseCase, os.Stdin, out).Run(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	log.Info("Game session finished")

	return nil
}

// PrintScores - writes the recorded scoreboard to w.
func PrintScores(ctx context.Context, logger *slog.Logger, conf *config.Config, w io.Writer) error {
	gameUseCase, closeStorage, err := newGameUseCase(ctx, logger, conf)
	if err != nil {
		return err
	}
	defer closeStorage()

	scoreboard, err := gameUseCase.Scoreboard(ctx)
	if err != nil {
		return fmt.Errorf("could not load scores: %w", err)
	}

	writeScoreboard(w, scoreboard)

	return nil
}

func writeScoreboard(w io.Writer, scoreboard *entity.Scoreboard) {
	fmt.Fprintf(w, "games: %d, ties: %d\n", scoreboard.Games, scoreboard.Ties)
	for _, score := range scoreboard.Scores {
		fmt.Fprintf(w, "%-20s %d\n", score.Name, score.Wins)
	}
}

func newGameUseCase(ctx context.Context, logger *slog.Logger, conf *config.Config) (usecase.GameUseCase, func(), error) {
	winCheck, err := tictactoe.ParseWinCheck(conf.WinCheck)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	resultRepo, closeStorage, err := newResultRepository(ctx, logger, conf)
	if err != nil {
		return nil, nil, err
	}

	players := make([]usecase.PlayerSettings, 0, len(conf.Players))
	for _, player := range conf.Players {
		players = append(players, usecase.PlayerSettings{Name: player.Name, Mark: player.Mark})
	}

	settings := usecase.GameSettings{
		BoardSize: conf.BoardSize,
		WinCheck:  winCheck,
		Players:   players,
	}

	scoreService := service.NewScoreService(logger, resultRepo)

	return usecase.NewGameUseCase(logger, settings, scoreService), closeStorage, nil
}

func newResultRepository(ctx context.Context, logger *slog.Logger, conf *config.Config) (repository.ResultRepository, func(), error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryResultRepository(), func() {}, nil
	}

	if err := conf.Redis.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid redis configuration: %w", err)
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeStorage := func() {
		if err := redisStorage.Close(); err != nil {
			logger.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewResultRepository(redisStorage.Connection, conf.Redis.Key), closeStorage, nil
}
