package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

type ScoreService interface {
	Record(ctx context.Context, result *entity.Result) error
	Scoreboard(ctx context.Context) (*entity.Scoreboard, error)
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
	List(ctx context.Context) ([]*entity.Result, error)
}

type scoreService struct {
	logger *slog.Logger

	resultRepo resultRepo
}

func NewScoreService(logger *slog.Logger, resultRepo resultRepo) ScoreService {
	return &scoreService{
		logger:     logger.With("component", "score"),
		resultRepo: resultRepo,
	}
}

func (that *scoreService) Record(ctx context.Context, result *entity.Result) error {
	if err := that.resultRepo.Save(ctx, result); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	that.logger.Info("result recorded", "game_id", result.GameID, "winner", result.Winner, "tie", result.Tie)

	return nil
}

// Scoreboard tallies every recorded result; players are ordered by wins,
// then by name.
func (that *scoreService) Scoreboard(ctx context.Context) (*entity.Scoreboard, error) {
	results, err := that.resultRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	scoreboard := &entity.Scoreboard{Games: len(results)}

	wins := make(map[string]int)
	for _, result := range results {
		if result.Tie {
			scoreboard.Ties++
			continue
		}
		wins[result.Winner]++
	}

	for name, count := range wins {
		scoreboard.Scores = append(scoreboard.Scores, entity.Score{Name: name, Wins: count})
	}

	sort.Slice(scoreboard.Scores, func(i, j int) bool {
		a, b := scoreboard.Scores[i], scoreboard.Scores[j]
		if a.Wins != b.Wins {
			return a.Wins > b.Wins
		}
		return a.Name < b.Name
	})

	return scoreboard, nil
}
