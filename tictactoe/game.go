package tictactoe

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"charbot-engines/types"
)

// ErrInvalidDifficulty is returned for a difficulty code outside 1..4.
var ErrInvalidDifficulty = errors.New("invalid difficulty value")

// Difficulty selects the computer opponent and the reward tier.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
	RandomDifficulty
)

// ParseDifficulty maps host difficulty codes 1..4 to a Difficulty.
func ParseDifficulty(code int) (Difficulty, error) {
	d := Difficulty(code)
	switch d {
	case Easy, Medium, Hard, RandomDifficulty:
		return d, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidDifficulty, code)
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case RandomDifficulty:
		return "random"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// DefaultPoints is the reward table per difficulty.
var DefaultPoints = map[Difficulty]types.Points{
	Easy: {
		Win:  types.Reward{XP: 1, Currency: 1},
		Draw: types.Reward{XP: 1},
	},
	Medium: {
		Win:  types.Reward{XP: 2, Currency: 2},
		Draw: types.Reward{XP: 2},
	},
	Hard: {
		Win:  types.Reward{XP: 2, Currency: 3},
		Draw: types.Reward{XP: 2, Currency: 1},
	},
	RandomDifficulty: {
		Win:  types.Reward{XP: 1, Currency: 1},
		Draw: types.Reward{XP: 1},
	},
}

// randomOpponents lists the computer strategies for RandomDifficulty with the
// probability that the human gets to play X against each.
var randomOpponents = []struct {
	name       string
	humanFirst float64
}{
	{"m", 0.5},
	{"a", 0.25},
	{"r", 0.75},
}

// Game is one tic-tac-toe match between a human and a computer strategy.
// X always moves first.
type Game struct {
	ID         string
	board      Board
	playerX    Player
	playerO    Player
	humanFirst bool
	difficulty Difficulty
	points     types.Points
}

// New creates a game for a host difficulty code. If the computer plays X its
// first move is made before New returns.
func New(code int, rng *rand.Rand) (*Game, error) {
	difficulty, err := ParseDifficulty(code)
	if err != nil {
		return nil, err
	}
	return NewWithPoints(difficulty, DefaultPoints[difficulty], rng)
}

// NewWithPoints is New with an explicit reward table.
func NewWithPoints(difficulty Difficulty, points types.Points, rng *rand.Rand) (*Game, error) {
	var x, o string
	humanFirst := true
	switch difficulty {
	case Easy:
		x, o = "h", "r"
	case Medium:
		if rng.Float64() < 0.5 {
			x, o = "h", "m"
		} else {
			x, o = "m", "h"
			humanFirst = false
		}
	case Hard:
		x, o = "a", "h"
		humanFirst = false
	case RandomDifficulty:
		opp := randomOpponents[rng.Intn(len(randomOpponents))]
		if rng.Float64() < opp.humanFirst {
			x, o = "h", opp.name
		} else {
			x, o = opp.name, "h"
			humanFirst = false
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(difficulty))
	}

	playerX, err := ChoosePlayer(x, rng)
	if err != nil {
		return nil, err
	}
	playerO, err := ChoosePlayer(o, rng)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ID:         uuid.NewString(),
		board:      NewBoard(),
		playerX:    playerX,
		playerO:    playerO,
		humanFirst: humanFirst,
		difficulty: difficulty,
		points:     points,
	}
	logrus.WithFields(logrus.Fields{
		"game":       g.ID,
		"difficulty": difficulty,
		"x":          playerX,
		"o":          playerO,
	}).Debug("tictactoe game created")

	if !humanFirst {
		g.board.PlacePiece(g.playerX.Play(g.board, X), X)
	}
	return g, nil
}

// HumanPiece is the piece the human plays.
func (g *Game) HumanPiece() Piece {
	if g.humanFirst {
		return X
	}
	return O
}

func (g *Game) computer() (Player, Piece) {
	if g.humanFirst {
		return g.playerO, O
	}
	return g.playerX, X
}

// Play places the human piece at index and lets the computer reply. The
// computer's move is returned with ok set; ok is false when the game ended
// before the computer could move. index must be a valid empty cell; a game that
// is already over is left untouched.
func (g *Game) Play(index Index) (move Index, ok bool) {
	if g.Finished() {
		return 0, false
	}
	human := g.HumanPiece()
	g.board.PlacePiece(index, human)
	if g.board.IsVictoryForPlayer(human) || g.board.IsDraw() {
		g.logEnd()
		return 0, false
	}
	computer, piece := g.computer()
	move = computer.Play(g.board, piece)
	g.board.PlacePiece(move, piece)
	if g.Finished() {
		g.logEnd()
	}
	return move, true
}

func (g *Game) logEnd() {
	outcome := "draw"
	if g.HasPlayerWon() {
		outcome = "win"
	} else if g.HasPlayerLost() {
		outcome = "loss"
	}
	logrus.WithFields(logrus.Fields{"game": g.ID, "outcome": outcome}).Debug("tictactoe game over")
}

// Board returns the nine cells row-major.
func (g *Game) Board() []Piece {
	return g.board.Cells()
}

// CellIsEmpty reports whether index is free for the human's next move.
func (g *Game) CellIsEmpty(index Index) bool {
	return IsValidIndex(index) && g.board.CellIsEmpty(index)
}

// HumanFirst reports whether the human plays X.
func (g *Game) HumanFirst() bool { return g.humanFirst }

// Difficulty returns the difficulty the game was created with.
func (g *Game) Difficulty() Difficulty { return g.difficulty }

// Players returns the X and O strategies.
func (g *Game) Players() (x, o Player) { return g.playerX, g.playerO }

// Finished reports whether someone won or the board is full.
func (g *Game) Finished() bool {
	_, won := g.board.IsVictory()
	return won || g.board.IsDraw()
}

// IsDraw reports a full board with no winner.
func (g *Game) IsDraw() bool {
	_, won := g.board.IsVictory()
	return !won && g.board.IsDraw()
}

// Winner returns the winning piece, if any.
func (g *Game) Winner() (Piece, bool) {
	return g.board.IsVictory()
}

func (g *Game) HasPlayerWon() bool {
	return g.board.IsVictoryForPlayer(g.HumanPiece())
}

func (g *Game) HasPlayerLost() bool {
	return g.board.IsVictoryForPlayer(g.HumanPiece().Swap())
}

// Points returns the reward for the current outcome: draw, win, otherwise loss.
func (g *Game) Points() types.Reward {
	switch {
	case g.IsDraw():
		return g.points.Draw
	case g.HasPlayerWon():
		return g.points.Win
	default:
		return g.points.Loss
	}
}

// PointsTable returns the reward tiers fixed at creation.
func (g *Game) PointsTable() types.Points { return g.points }
