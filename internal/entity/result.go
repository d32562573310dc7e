package entity

import "time"

// Result is the record of a finished game kept by the scoreboard.
type Result struct {
	GameID     string    `json:"game_id"`
	Winner     string    `json:"winner,omitempty"`
	Mark       Mark      `json:"mark,omitempty"`
	Tie        bool      `json:"tie"`
	FinishedAt time.Time `json:"finished_at"`
}

func NewWinResult(gameID string, winner Player, finishedAt time.Time) *Result {
	return &Result{
		GameID:     gameID,
		Winner:     winner.Name(),
		Mark:       winner.Mark(),
		FinishedAt: finishedAt,
	}
}

func NewTieResult(gameID string, finishedAt time.Time) *Result {
	return &Result{
		GameID:     gameID,
		Tie:        true,
		FinishedAt: finishedAt,
	}
}
