// Package tictactoe implements a 3x3 tic-tac-toe engine with computer opponents.
package tictactoe

import (
	"fmt"
	"strings"
)

// Piece is the content of a board cell.
type Piece int

const (
	X Piece = iota
	O
	Empty
)

// Swap returns the opponent's piece. Empty stays Empty.
func (p Piece) Swap() Piece {
	switch p {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// String returns the symbol drawn for the piece; Empty is a space.
func (p Piece) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Name returns the piece name as exposed to the host.
func (p Piece) Name() string {
	if p == Empty {
		return "Empty"
	}
	return p.String()
}

// Index addresses a cell, row-major from 0 (top left) to 8 (bottom right).
type Index = int

// BoardCells is the number of cells on the board.
const BoardCells = 9

var winningLines = [8][3]Index{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// IsValidIndex reports whether index addresses a board cell.
func IsValidIndex(index Index) bool {
	return index >= 0 && index < BoardCells
}

// Board is a 3x3 grid. The zero value is not empty; use NewBoard.
// Board is a value type, copying it copies the grid.
type Board struct {
	cells   [BoardCells]Piece
	nPieces int
}

// NewBoard returns an empty board.
func NewBoard() Board {
	var b Board
	for i := range b.cells {
		b.cells[i] = Empty
	}
	return b
}

// Cells returns a copy of the grid.
func (b *Board) Cells() []Piece {
	out := make([]Piece, BoardCells)
	copy(out, b.cells[:])
	return out
}

// At returns the piece at index.
func (b *Board) At(index Index) Piece {
	return b.cells[index]
}

// Pieces returns how many pieces have been placed.
func (b *Board) Pieces() int {
	return b.nPieces
}

// CellIsEmpty reports whether no piece occupies index.
func (b *Board) CellIsEmpty(index Index) bool {
	return b.cells[index] == Empty
}

// PlacePiece puts piece at index. Callers must only pass empty cells;
// placing on an occupied cell panics.
func (b *Board) PlacePiece(index Index, piece Piece) {
	if !b.CellIsEmpty(index) {
		panic(fmt.Sprintf("tictactoe: tried to place a piece on occupied cell %d", index))
	}
	b.cells[index] = piece
	b.nPieces++
}

// EmptyCells lists the empty indices in ascending order.
func (b *Board) EmptyCells() []Index {
	out := make([]Index, 0, BoardCells-b.nPieces)
	for i := 0; i < BoardCells; i++ {
		if b.CellIsEmpty(i) {
			out = append(out, i)
		}
	}
	return out
}

// IsDraw reports a full board. A full board can also be a win, check victory first.
func (b *Board) IsDraw() bool {
	return b.nPieces >= BoardCells
}

// IsVictoryForPlayer reports whether piece fills any winning line.
func (b *Board) IsVictoryForPlayer(piece Piece) bool {
	for _, line := range winningLines {
		if b.cells[line[0]] == piece && b.cells[line[1]] == piece && b.cells[line[2]] == piece {
			return true
		}
	}
	return false
}

// IsVictory returns the winning piece, X before O. ok is false if nobody has won.
func (b *Board) IsVictory() (winner Piece, ok bool) {
	if b.IsVictoryForPlayer(X) {
		return X, true
	}
	if b.IsVictoryForPlayer(O) {
		return O, true
	}
	return Empty, false
}

// String renders the board in three lines, empty cells shown by their index.
func (b Board) String() string {
	var sb strings.Builder
	for i, p := range b.cells {
		if i > 0 && i%3 == 0 {
			sb.WriteByte('\n')
		}
		if p == Empty {
			fmt.Fprintf(&sb, "%d", i)
		} else {
			sb.WriteString(p.String())
		}
	}
	return sb.String()
}
