package tictactoe

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-terminal/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-terminal/internal/entity"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Variant decides who wins and what happens when the game ends.
type Variant interface {
	CheckForWinner(board *entity.Board) (entity.Mark, bool)
	Finisher
}

// Finisher is notified once when the game reaches a terminal state.
type Finisher interface {
	EndWithWinner(winner entity.Player)
	EndWithTie()
}

type Option func(*Game)

func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

func WithWinCheck(winCheck WinCheck) Option {
	return func(g *Game) {
		g.winCheck = winCheck
	}
}

func WithID(id string) Option {
	return func(g *Game) {
		g.id = id
	}
}

// Game drives turn order over a board and hands the outcome to its variant.
// It is not safe for concurrent use.
type Game struct {
	id       string
	players  []entity.Player
	board    *entity.Board
	variant  Variant
	winCheck WinCheck
	logger   *slog.Logger

	currentPlayerIndex int
	status             string
	winner             *entity.Player
}

func New(players []entity.Player, board *entity.Board, variant Variant, opts ...Option) (*Game, error) {
	if variant == nil {
		return nil, apperror.ErrNotImplemented
	}

	if board == nil {
		return nil, fmt.Errorf("%w: board is missing", apperror.ErrInvalidSize)
	}

	if len(players) < 2 {
		return nil, fmt.Errorf("%w: got %d", apperror.ErrNotEnoughPlayers, len(players))
	}

	marks := make(map[entity.Mark]struct{}, len(players))
	for _, player := range players {
		if _, ok := marks[player.Mark()]; ok {
			return nil, fmt.Errorf("%w: %s", apperror.ErrDuplicateMark, player.Mark())
		}
		marks[player.Mark()] = struct{}{}
	}

	game := &Game{
		id:       uuid.NewString(),
		players:  append([]entity.Player(nil), players...),
		board:    board,
		variant:  variant,
		winCheck: WinCheckBoardFull,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		status:   StatusOngoing,
	}

	for _, opt := range opts {
		opt(game)
	}

	game.logger = game.logger.With("component", "game", "game_id", game.id)

	return game, nil
}

// MakeTurn places the current player's mark at (row, col). With the default
// WinCheckBoardFull policy a winning line is looked for only once the board
// has no empty cells left.
func (that *Game) MakeTurn(row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	player := that.CurrentPlayer()
	if err := that.board.PlaceMark(row, col, player.Mark()); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.logger.Debug("mark placed", "player", player.Name(), "mark", player.Mark(), "row", row, "col", col)

	full := !that.board.HasEmptyCells()
	if full || that.winCheck == WinCheckEveryTurn {
		if winner, ok := that.CheckForWinner(); ok {
			that.endGameWithWinner(winner)
			return nil
		}
	}

	if full {
		that.endGameWithTie()
		return nil
	}

	that.passTurnToNextPlayer()

	return nil
}

// CheckForWinner asks the variant for a winning mark and resolves its owner.
func (that *Game) CheckForWinner() (entity.Player, bool) {
	mark, ok := that.variant.CheckForWinner(that.board)
	if !ok {
		return entity.Player{}, false
	}

	winner, err := that.PlayerByMark(mark)
	if err != nil {
		that.logger.Warn("winning mark has no owner", "mark", mark, "error", err)
		return entity.Player{}, false
	}

	return winner, true
}

func (that *Game) PlayerByMark(mark entity.Mark) (entity.Player, error) {
	for _, player := range that.players {
		if player.Mark() == mark {
			return player, nil
		}
	}

	return entity.Player{}, fmt.Errorf("%w: mark %q", apperror.ErrPlayerNotFound, mark)
}

func (that *Game) CurrentPlayer() entity.Player {
	return that.players[that.currentPlayerIndex]
}

func (that *Game) ID() string {
	return that.id
}

func (that *Game) Players() []entity.Player {
	return append([]entity.Player(nil), that.players...)
}

func (that *Game) Board() *entity.Board {
	return that.board
}

func (that *Game) Status() string {
	return that.status
}

func (that *Game) IsFinished() bool {
	return that.status == StatusFinished
}

// Winner reports the winning player of a finished game.
func (that *Game) Winner() (entity.Player, bool) {
	if that.winner == nil {
		return entity.Player{}, false
	}

	return *that.winner, true
}

// Result returns the record of a finished game, or nil while it is ongoing.
func (that *Game) Result(finishedAt time.Time) *entity.Result {
	if !that.IsFinished() {
		return nil
	}

	if winner, ok := that.Winner(); ok {
		return entity.NewWinResult(that.id, winner, finishedAt)
	}

	return entity.NewTieResult(that.id, finishedAt)
}

func (that *Game) passTurnToNextPlayer() {
	if that.currentPlayerIndex >= len(that.players)-1 {
		that.currentPlayerIndex = 0
	} else {
		that.currentPlayerIndex++
	}
}

func (that *Game) endGameWithWinner(winner entity.Player) {
	that.status = StatusFinished
	that.winner = &winner

	that.logger.Info("game finished", "winner", winner.Name(), "mark", winner.Mark())
	that.variant.EndWithWinner(winner)
}

func (that *Game) endGameWithTie() {
	that.status = StatusFinished

	that.logger.Info("game finished with a tie")
	that.variant.EndWithTie()
}
