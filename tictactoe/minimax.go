package tictactoe

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// GameResult is the game-theoretic value of a position for the searching side.
// Values are ordered: Defeat < Draw < Victory.
type GameResult int

const (
	Defeat GameResult = iota
	Draw
	Victory
)

func (r GameResult) String() string {
	switch r {
	case Defeat:
		return "defeat"
	case Draw:
		return "draw"
	default:
		return "victory"
	}
}

// SearchResult is what a full game-tree search reports.
// Move is -1 when the board has no empty cell.
type SearchResult struct {
	Result GameResult
	Move   Index
	Nodes  int
}

// Search evaluates every continuation of board with piece to move and returns
// the best value and the first move in order that reaches it. order lists the
// candidate cells to try; occupied cells are skipped. With alphaBeta set,
// branches that cannot change the result are pruned; the chosen move and value
// are the same as without pruning for the same order.
func Search(board Board, piece Piece, alphaBeta bool, order []Index) SearchResult {
	s := searcher{piece: piece, alphaBeta: alphaBeta, order: order}
	result, move := s.step(board, true, Defeat, Victory)
	return SearchResult{Result: result, Move: move, Nodes: s.nodes}
}

type searcher struct {
	piece     Piece
	alphaBeta bool
	order     []Index
	nodes     int
}

func (s *searcher) step(board Board, maximizing bool, alpha, beta GameResult) (GameResult, Index) {
	s.nodes++

	// Wins are checked before the full board: a full board can be a win.
	if board.IsVictoryForPlayer(s.piece) {
		return Victory, -1
	}
	if board.IsVictoryForPlayer(s.piece.Swap()) {
		return Defeat, -1
	}
	if board.IsDraw() {
		return Draw, -1
	}

	best := Victory
	mover := s.piece.Swap()
	if maximizing {
		best = Defeat
		mover = s.piece
	}
	bestMove := -1

	for _, index := range s.order {
		if !board.CellIsEmpty(index) {
			continue
		}
		next := board
		next.PlacePiece(index, mover)
		result, _ := s.step(next, !maximizing, alpha, beta)

		improved := maximizing && result > best || !maximizing && result < best
		if improved {
			best = result
		}
		if improved || bestMove < 0 {
			bestMove = index
		}

		if !s.alphaBeta {
			continue
		}
		if maximizing {
			alpha = max(alpha, best)
		} else {
			beta = min(beta, best)
		}
		if alpha >= beta {
			break
		}
	}
	return best, bestMove
}

// MinimaxPlayer plays optimally by exhaustive game-tree search. Candidate
// moves are shuffled once per search so equal moves are not always taken in
// the same order.
type MinimaxPlayer struct {
	alphaBeta bool
	rng       *rand.Rand
}

func NewMinimaxPlayer(alphaBeta bool, rng *rand.Rand) *MinimaxPlayer {
	return &MinimaxPlayer{alphaBeta: alphaBeta, rng: rng}
}

func (*MinimaxPlayer) String() string { return "Minimax player" }

// AlphaBeta reports whether pruning is enabled.
func (p *MinimaxPlayer) AlphaBeta() bool { return p.alphaBeta }

func (p *MinimaxPlayer) Play(board Board, piece Piece) Index {
	res := Search(board, piece, p.alphaBeta, p.rng.Perm(BoardCells))
	if res.Move < 0 {
		panic("tictactoe: minimax player asked to move on a finished board")
	}
	logrus.WithFields(logrus.Fields{
		"nodes":      res.Nodes,
		"move":       res.Move,
		"result":     res.Result,
		"alpha_beta": p.alphaBeta,
	}).Debug("minimax search done")
	return res.Move
}
