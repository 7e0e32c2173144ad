package tictactoe

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrUnknownPlayer is returned by ChoosePlayer for an unrecognized strategy name.
var ErrUnknownPlayer = errors.New("unknown player")

// Player chooses the next move. Play must return the index of an empty cell
// and must not modify the board. The board is passed by value.
type Player interface {
	Play(board Board, piece Piece) Index
	String() string
}

// ChoosePlayer builds a strategy from its long or short name:
// human/h, minimax/m, alphabeta/a, random/r.
func ChoosePlayer(name string, rng *rand.Rand) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "human", "h":
		return HumanPlayer{}, nil
	case "minimax", "m":
		return NewMinimaxPlayer(false, rng), nil
	case "alphabeta", "a":
		return NewMinimaxPlayer(true, rng), nil
	case "random", "r":
		return NewRandomPlayer(rng), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlayer, name)
	}
}

// HumanPlayer stands in for a person. Real input comes from the host, which
// validates it; here the first empty cell is chosen.
type HumanPlayer struct{}

func (HumanPlayer) String() string { return "Human player" }

func (HumanPlayer) Play(board Board, _ Piece) Index {
	for i := 0; i < BoardCells; i++ {
		if board.CellIsEmpty(i) {
			return i
		}
	}
	panic("tictactoe: human player asked to move on a full board")
}

// RandomPlayer picks uniformly among empty cells.
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(rng *rand.Rand) *RandomPlayer {
	return &RandomPlayer{rng: rng}
}

func (*RandomPlayer) String() string { return "Random player" }

func (p *RandomPlayer) Play(board Board, _ Piece) Index {
	empty := board.EmptyCells()
	if len(empty) == 0 {
		panic("tictactoe: random player asked to move on a full board")
	}
	return empty[p.rng.Intn(len(empty))]
}
