package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const DefaultResultsKey = "tictactoe:results"

type ResultRepository interface {
	Save(ctx context.Context, result *entity.Result) error
	List(ctx context.Context) ([]*entity.Result, error)
}

type dbResult struct {
	client *redis.Client
	key    string
}

// NewResultRepository keeps results in a redis list stored under key.
func NewResultRepository(client *redis.Client, key string) ResultRepository {
	if key == "" {
		key = DefaultResultsKey
	}

	return &dbResult{
		client: client,
		key:    key,
	}
}

func (that *dbResult) Save(ctx context.Context, result *entity.Result) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	if err = that.client.RPush(ctx, that.key, resultJSON).Err(); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) List(ctx context.Context) ([]*entity.Result, error) {
	response, err := that.client.LRange(ctx, that.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	results := make([]*entity.Result, 0, len(response))
	for _, item := range response {
		var result entity.Result
		if err = json.Unmarshal([]byte(item), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result: %w", err)
		}

		results = append(results, &result)
	}

	return results, nil
}

type memoryResult struct {
	mu      sync.Mutex
	results []entity.Result
}

// NewMemoryResultRepository keeps results for the lifetime of the process.
func NewMemoryResultRepository() ResultRepository {
	return &memoryResult{}
}

func (that *memoryResult) Save(_ context.Context, result *entity.Result) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.results = append(that.results, *result)

	return nil
}

func (that *memoryResult) List(_ context.Context) ([]*entity.Result, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	results := make([]*entity.Result, 0, len(that.results))
	for i := range that.results {
		result := that.results[i]
		results = append(results, &result)
	}

	return results, nil
}
