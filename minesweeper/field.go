package minesweeper

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Direction moves the selection cursor by one cell.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Field is a width x height grid of cells addressed row-major by index
// y*width+x. Mines are placed on the first reveal, away from the revealed
// cell, using the field's own random source.
type Field struct {
	cells         []Cell
	width         int
	height        int
	mines         int
	selectedX     int
	selectedY     int
	numbersTotal  int
	numbersOpened int
	needRegen     bool
	rng           *rand.Rand
}

// NewField allocates an empty field. No mines are placed until ResetIfNeed.
func NewField(width, height, mines int, rng *rand.Rand) *Field {
	f := &Field{
		width:  width,
		height: height,
		mines:  mines,
		rng:    rng,
	}
	f.Restart()
	return f
}

// Restart clears every cell, re-centres the cursor and defers mine placement
// to the next reveal.
func (f *Field) Restart() {
	f.needRegen = true
	f.cells = make([]Cell, f.width*f.height)
	f.numbersTotal = 0
	f.numbersOpened = 0
	f.selectedX = f.width / 2
	f.selectedY = f.height / 2
}

// Pending reports whether mines have yet to be placed.
func (f *Field) Pending() bool { return f.needRegen }

// ResetIfNeed places the mines around cursor if that has not happened yet.
func (f *Field) ResetIfNeed(cursor int) {
	if f.needRegen {
		f.reset(cursor)
		f.needRegen = false
	}
}

// reset lays out the mines so that cursor and its neighbors are mine-free,
// then writes the adjacency numbers.
func (f *Field) reset(cursor int) {
	f.clear()

	safe := f.NearCellIDs(cursor)
	shuffled := make([]Cell, f.Size()-len(safe))
	for i := range shuffled {
		if i < f.mines {
			shuffled[i].content = Content{Kind: Mine}
		}
	}
	f.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	// safe is ascending, merge it back in at its absolute positions.
	next := 0
	for i := range f.cells {
		if len(safe) > 0 && safe[0] == i {
			safe = safe[1:]
			continue
		}
		f.cells[i] = shuffled[next]
		next++
	}

	f.writeNumbers()
	f.needRegen = false
	logrus.WithFields(logrus.Fields{
		"cursor":  cursor,
		"mines":   f.mines,
		"numbers": f.numbersTotal,
	}).Debug("minesweeper field generated")
}

func (f *Field) writeNumbers() {
	for i := range f.cells {
		if f.cells[i].content.Kind != None {
			continue
		}
		count := 0
		for _, j := range f.NearCellIDs(i) {
			if f.cells[j].content.Kind == Mine {
				count++
			}
		}
		if count > 0 {
			f.cells[i].content = Content{Kind: Number, Count: count}
			f.numbersTotal++
		}
	}
}

func (f *Field) clear() {
	for i := range f.cells {
		f.cells[i].clear()
	}
	f.numbersOpened = 0
	f.numbersTotal = 0
}

// bounds returns the 3x3 box around index, clamped to the field.
func (f *Field) bounds(index int) (beginX, endX, beginY, endY int) {
	x, y := f.Coord(index)
	return max(x-1, 0), min(x+1, f.width-1), max(y-1, 0), min(y+1, f.height-1)
}

// NearCellIDs lists index and its neighbors in ascending order. Cells on an
// edge or corner have fewer neighbors.
func (f *Field) NearCellIDs(index int) []int {
	beginX, endX, beginY, endY := f.bounds(index)
	ids := make([]int, 0, 9)
	for y := beginY; y <= endY; y++ {
		for x := beginX; x <= endX; x++ {
			ids = append(ids, f.CellIndex(x, y))
		}
	}
	return ids
}

// NeighborhoodCount counts flagged cells in the 3x3 box around index.
func (f *Field) NeighborhoodCount(index int) int {
	count := 0
	for _, i := range f.NearCellIDs(index) {
		if f.cell(i).marked {
			count++
		}
	}
	return count
}

func (f *Field) CellIndex(x, y int) int { return x + y*f.width }

// Coord returns the (x, y) position of index.
func (f *Field) Coord(index int) (int, int) {
	return index % f.width, index / f.width
}

// IsValidIndex reports whether index addresses a cell.
func (f *Field) IsValidIndex(index int) bool {
	return index >= 0 && index < len(f.cells)
}

func (f *Field) cell(i int) *Cell {
	if !f.IsValidIndex(i) {
		panic(fmt.Sprintf("minesweeper: cell index %d out of range [0, %d)", i, len(f.cells)))
	}
	return &f.cells[i]
}

// Cell returns a copy of the cell at index.
func (f *Field) Cell(i int) Cell { return *f.cell(i) }

// Reveal opens the cell at i and returns what it holds.
func (f *Field) Reveal(i int) Content {
	c := f.cell(i)
	if !c.revealed {
		if c.reveal().Kind == Number {
			f.numbersOpened++
		}
	}
	return c.content
}

// RevealAll opens every cell. Opened-number counts are left as they were.
func (f *Field) RevealAll() {
	for i := range f.cells {
		f.cells[i].revealed = true
	}
}

// ChainReveal flood-fills outward from u: every connected empty cell and the
// numbers bordering them are revealed and unflagged. Mines are never touched.
// Nothing happens if u is flagged.
func (f *Field) ChainReveal(u int) {
	if f.cell(u).marked {
		return
	}
	queue := []int{u}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		for _, j := range f.NearCellIDs(i) {
			c := &f.cells[j]
			if c.revealed {
				continue
			}
			switch c.content.Kind {
			case None:
				queue = append(queue, j)
			case Number:
			default:
				continue
			}
			c.marked = false
			f.Reveal(j)
		}
	}
}

// ToggleMark flips the flag on i. A revealed cell cannot be flagged or
// unflagged; false is returned and nothing changes.
func (f *Field) ToggleMark(i int) bool {
	c := f.cell(i)
	if c.revealed {
		return false
	}
	c.marked = !c.marked
	return true
}

// SetKiller marks the mine at i as the one that ended the game.
func (f *Field) SetKiller(i int) {
	f.cell(i).content = Content{Kind: Mine, Detonated: true}
}

func (f *Field) Revealed(i int) bool { return f.cell(i).revealed }
func (f *Field) Marked(i int) bool   { return f.cell(i).marked }

// Content returns what lies under i without revealing it.
func (f *Field) Content(i int) Content { return f.cell(i).content }

// CountMarked counts flagged cells.
func (f *Field) CountMarked() int {
	n := 0
	for i := range f.cells {
		if f.cells[i].marked {
			n++
		}
	}
	return n
}

// IsVictory reports whether every numbered cell is open. Mines need not be
// flagged. A field without mines placed yet is not won.
func (f *Field) IsVictory() bool {
	return !f.needRegen && f.numbersOpened == f.numbersTotal
}

// MoveSelection moves the cursor one cell, stopping at the edges.
func (f *Field) MoveSelection(dir Direction) {
	switch dir {
	case Up:
		if f.selectedY > 0 {
			f.selectedY--
		}
	case Down:
		if f.selectedY < f.height-1 {
			f.selectedY++
		}
	case Left:
		if f.selectedX > 0 {
			f.selectedX--
		}
	case Right:
		if f.selectedX < f.width-1 {
			f.selectedX++
		}
	}
}

// SelectedIndex is the index under the cursor.
func (f *Field) SelectedIndex() int { return f.CellIndex(f.selectedX, f.selectedY) }

// SelectedCell returns a copy of the cell under the cursor.
func (f *Field) SelectedCell() Cell { return f.Cell(f.SelectedIndex()) }

func (f *Field) X() int      { return f.selectedX }
func (f *Field) Y() int      { return f.selectedY }
func (f *Field) Width() int  { return f.width }
func (f *Field) Height() int { return f.height }
func (f *Field) Size() int   { return f.width * f.height }
func (f *Field) Mines() int  { return f.mines }
