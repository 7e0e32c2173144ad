// Package minesweeper implements a minesweeper board with deferred mine
// placement, flood-fill reveal and chording.
package minesweeper

import (
	"fmt"

	"charbot-engines/types"
)

// ContentKind tells what a cell holds.
type ContentKind int

const (
	None ContentKind = iota
	Number
	Mine
)

// Content is what lies under a cell. Count is set for Number (1..8).
// Detonated is set on the mine that ended the game.
type Content struct {
	Kind      ContentKind
	Count     int
	Detonated bool
}

func (c Content) String() string {
	switch c.Kind {
	case Number:
		return fmt.Sprintf("Number(%d)", c.Count)
	case Mine:
		return fmt.Sprintf("Mine(%t)", c.Detonated)
	default:
		return "None"
	}
}

// Cell is one square of the field.
type Cell struct {
	content  Content
	revealed bool
	marked   bool
}

func (c *Cell) clear() {
	*c = Cell{}
}

func (c *Cell) reveal() Content {
	c.revealed = true
	return c.content
}

func (c Cell) Content() Content { return c.content }
func (c Cell) Revealed() bool   { return c.revealed }
func (c Cell) Marked() bool     { return c.marked }

// ReturnCell is the player-visible part of the cell.
func (c Cell) ReturnCell() types.ReturnCell {
	return types.ReturnCell{Revealed: c.revealed, Marked: c.marked}
}

// State is the full cell state for a renderer.
func (c Cell) State() types.CellState {
	s := types.CellState{Revealed: c.revealed, Marked: c.marked}
	switch c.content.Kind {
	case Number:
		s.Content = types.ContentNumber
		s.Number = c.content.Count
	case Mine:
		s.Content = types.ContentMine
		s.Killer = c.content.Detonated
	default:
		s.Content = types.ContentNone
	}
	return s
}
