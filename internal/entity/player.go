package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
)

// Player is immutable once created.
type Player struct {
	mark Mark
	name string
}

func NewPlayer(mark Mark, name string) (Player, error) {
	if !mark.IsPlayerMark() {
		return Player{}, fmt.Errorf("%w: %d", apperror.ErrInvalidMark, mark)
	}

	return Player{mark: mark, name: name}, nil
}

func (that Player) Mark() Mark {
	return that.mark
}

func (that Player) Name() string {
	return that.name
}
