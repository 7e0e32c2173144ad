// Package types contains plain data handed back to the host application.
package types

import (
	"encoding/json"
	"fmt"
)

// Reward is the (experience, currency) pair granted to the human participant.
type Reward struct {
	XP       int `json:"xp"`
	Currency int `json:"currency"`
}

// Points holds the reward tiers fixed by a difficulty at game creation.
type Points struct {
	Win  Reward `json:"win"`
	Draw Reward `json:"draw"`
	Loss Reward `json:"loss"`
}

// ReturnCell is the player-visible state of a single minesweeper cell.
type ReturnCell struct {
	Revealed bool `json:"revealed"`
	Marked   bool `json:"marked"`
}

// Cell content kinds as seen by a renderer.
const (
	ContentNone   = "none"
	ContentNumber = "number"
	ContentMine   = "mine"
)

// CellState is the full state of one cell, including hidden content.
type CellState struct {
	Content  string `json:"content"`
	Number   int    `json:"number,omitempty"`
	Killer   bool   `json:"killer,omitempty"` // mine that ended the game
	Revealed bool   `json:"revealed"`
	Marked   bool   `json:"marked"`
}

// FieldState is everything an external renderer needs to draw a minesweeper board.
// Cells is indexed row-major: Cells[y*Width+x].
type FieldState struct {
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	Mines    int         `json:"mines"`
	Flagged  int         `json:"flagged"`
	Cursor   BoardPos    `json:"cursor"`
	Cells    []CellState `json:"cells"`
	Finished bool        `json:"finished"`
}

// Cell returns the state at column x, row y.
func (f *FieldState) Cell(x, y int) CellState {
	return f.Cells[y*f.Width+x]
}

// BoardPos represents a position on the board.
type BoardPos struct {
	X int
	Y int
}

// MarshalJSON encodes BoardPos as a JSON array [x, y].
func (p BoardPos) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// UnmarshalJSON allows BoardPos to be unmarshaled from a JSON array [x, y].
func (p *BoardPos) UnmarshalJSON(data []byte) error {
	var v []float64
	err := json.Unmarshal(data, &v)
	if err != nil {
		return err
	}
	if len(v) != 2 {
		return fmt.Errorf("board position must have 2 coordinates, got %d", len(v))
	}
	p.X = int(v[0])
	p.Y = int(v[1])
	return nil
}
