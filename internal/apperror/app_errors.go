package apperror

import "errors"

var (
	ErrInvalidMark      = errors.New("incorrect player mark type")
	ErrDuplicateMark    = errors.New("some players have same mark")
	ErrNotImplemented   = errors.New("win condition is not defined")
	ErrInvalidSize      = errors.New("board size must be positive")
	ErrOutOfBounds      = errors.New("cell is out of bounds")
	ErrNotEnoughPlayers = errors.New("at least two players are required")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrGameFinished     = errors.New("game is already finished")
)
