package minesweeper

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"charbot-engines/types"
)

var (
	ErrRowOutOfRange = errors.New("row index out of range")
	ErrColOutOfRange = errors.New("column index out of range")
	ErrUnknownPreset = errors.New("unknown preset")
	ErrInvalidSize   = errors.New("invalid field size")
	ErrGameOver      = errors.New("game is over")
)

// RevealResult is the outcome of Game.Reveal.
type RevealResult int

const (
	RevealFlagged RevealResult = iota
	RevealMine
	RevealEmpty
	RevealNumber
)

func (r RevealResult) String() string {
	switch r {
	case RevealFlagged:
		return "flagged"
	case RevealMine:
		return "mine"
	case RevealEmpty:
		return "empty"
	default:
		return "number"
	}
}

// ChordResult is the outcome of Game.Chord.
type ChordResult int

const (
	ChordFailed ChordResult = iota
	ChordSuccess
	ChordDeath
)

func (r ChordResult) String() string {
	switch r {
	case ChordFailed:
		return "failed"
	case ChordSuccess:
		return "success"
	default:
		return "death"
	}
}

// Preset fixes the field dimensions and the rewards of a difficulty.
type Preset struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Mines  int          `json:"mines"`
	Win    types.Reward `json:"win"`
	Loss   types.Reward `json:"loss"`
}

// Validate checks that the field has labels for every row and column and that
// the mines fit outside the opening 3x3 area.
func (p Preset) Validate() error {
	if p.Width < 1 || p.Width > MaxSide || p.Height < 1 || p.Height > MaxSide {
		return fmt.Errorf("%w: %dx%d, sides must be within 1..%d", ErrInvalidSize, p.Width, p.Height, MaxSide)
	}
	if limit := max(p.Width*p.Height-9, 0); p.Mines < 0 || p.Mines > limit {
		return fmt.Errorf("%w: %d mines on %dx%d, at most %d", ErrInvalidSize, p.Mines, p.Width, p.Height, limit)
	}
	return nil
}

// Preset names.
const (
	Beginner     = "beginner"
	Intermediate = "intermediate"
	Expert       = "expert"
	SuperExpert  = "super-expert"
)

// DefaultPresets is the difficulty table.
var DefaultPresets = map[string]Preset{
	Beginner: {
		Width: 8, Height: 8, Mines: 10,
		Win:  types.Reward{XP: 1, Currency: 1},
		Loss: types.Reward{XP: 1},
	},
	Intermediate: {
		Width: 16, Height: 16, Mines: 40,
		Win:  types.Reward{XP: 2, Currency: 3},
		Loss: types.Reward{XP: 2},
	},
	Expert: {
		Width: 22, Height: 22, Mines: 100,
		Win:  types.Reward{XP: 2, Currency: 4},
		Loss: types.Reward{XP: 2},
	},
	SuperExpert: {
		Width: 25, Height: 25, Mines: 130,
		Win:  types.Reward{XP: 3, Currency: 5},
		Loss: types.Reward{XP: 3},
	},
}

// PresetNames lists the keys of presets in a stable order.
func PresetNames(presets map[string]Preset) []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// customReward applies to games with caller-chosen dimensions.
var customReward = types.Reward{XP: 1}

// Game is one minesweeper playthrough on a Field.
type Game struct {
	ID    string
	field *Field
	win   types.Reward
	loss  types.Reward
	quit  bool
}

// New creates a game with custom dimensions.
func New(width, height, mines int, rng *rand.Rand) (*Game, error) {
	return NewFromPreset(Preset{
		Width: width, Height: height, Mines: mines,
		Win: customReward, Loss: customReward,
	}, rng)
}

// NewFromPreset creates a game from a validated preset.
func NewFromPreset(p Preset, rng *rand.Rand) (*Game, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		ID:    uuid.NewString(),
		field: NewField(p.Width, p.Height, p.Mines, rng),
		win:   p.Win,
		loss:  p.Loss,
	}
	logrus.WithFields(logrus.Fields{
		"game":   g.ID,
		"width":  p.Width,
		"height": p.Height,
		"mines":  p.Mines,
	}).Debug("minesweeper game created")
	return g, nil
}

// NewNamed creates a game from one of presets by name.
func NewNamed(presets map[string]Preset, name string, rng *rand.Rand) (*Game, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return NewFromPreset(p, rng)
}

// Field exposes the underlying board, mainly for renderers.
func (g *Game) Field() *Field { return g.field }

// WinPoints and LossPoints are the reward tiers fixed at creation.
func (g *Game) WinPoints() types.Reward  { return g.win }
func (g *Game) LossPoints() types.Reward { return g.loss }

// Points returns the win reward if the game is won, the loss reward otherwise.
func (g *Game) Points() types.Reward {
	if g.IsWin() {
		return g.win
	}
	return g.loss
}

func (g *Game) FlaggedCount() int { return g.field.CountMarked() }
func (g *Game) MineCount() int    { return g.field.Mines() }
func (g *Game) Size() int         { return g.field.Size() }
func (g *Game) Width() int        { return g.field.Width() }
func (g *Game) Height() int       { return g.field.Height() }
func (g *Game) X() int            { return g.field.X() }
func (g *Game) Y() int            { return g.field.Y() }

// ChangeRow moves the cursor to row and returns the selected cell.
func (g *Game) ChangeRow(row int) (types.ReturnCell, error) {
	if row < 0 || row >= g.field.Height() {
		return types.ReturnCell{}, fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	for g.field.Y() < row {
		g.field.MoveSelection(Down)
	}
	for g.field.Y() > row {
		g.field.MoveSelection(Up)
	}
	return g.field.SelectedCell().ReturnCell(), nil
}

// ChangeCol moves the cursor to col and returns the selected cell.
func (g *Game) ChangeCol(col int) (types.ReturnCell, error) {
	if col < 0 || col >= g.field.Width() {
		return types.ReturnCell{}, fmt.Errorf("%w: %d", ErrColOutOfRange, col)
	}
	for g.field.X() < col {
		g.field.MoveSelection(Right)
	}
	for g.field.X() > col {
		g.field.MoveSelection(Left)
	}
	return g.field.SelectedCell().ReturnCell(), nil
}

// SelectLabel moves the cursor to the cell at the given row and column labels.
// The cursor is left untouched if either label is invalid.
func (g *Game) SelectLabel(row, col string) (types.ReturnCell, error) {
	y, err := ParseLabel(row, g.field.Height())
	if err != nil {
		return types.ReturnCell{}, fmt.Errorf("row: %w", err)
	}
	x, err := ParseLabel(col, g.field.Width())
	if err != nil {
		return types.ReturnCell{}, fmt.Errorf("column: %w", err)
	}
	if _, err := g.ChangeRow(y); err != nil {
		return types.ReturnCell{}, err
	}
	return g.ChangeCol(x)
}

// ToggleFlag flips the flag on the selected cell. It fails on revealed cells.
func (g *Game) ToggleFlag() bool {
	return g.field.ToggleMark(g.field.SelectedIndex())
}

// Reveal opens the selected cell, placing the mines first if needed. A flagged
// cell is unflagged instead. Revealing a mine ends the game.
func (g *Game) Reveal() (RevealResult, error) {
	if g.Finished() {
		return 0, ErrGameOver
	}
	ind := g.field.SelectedIndex()
	g.field.ResetIfNeed(ind)
	if g.field.Marked(ind) {
		g.ToggleFlag()
		return RevealFlagged, nil
	}
	switch g.field.Reveal(ind).Kind {
	case None:
		g.field.ChainReveal(ind)
		g.logIfWon()
		return RevealEmpty, nil
	case Mine:
		g.detonate(ind)
		return RevealMine, nil
	default:
		g.logIfWon()
		return RevealNumber, nil
	}
}

// Chord reveals the unflagged neighbors of the selected number cell when the
// flags around it match its count. Nothing changes on failure.
func (g *Game) Chord() ChordResult {
	if g.Finished() {
		return ChordFailed
	}
	ind := g.field.SelectedIndex()
	content := g.field.Content(ind)
	if content.Kind != Number || !g.field.Revealed(ind) {
		return ChordFailed
	}
	if g.field.NeighborhoodCount(ind) != content.Count {
		return ChordFailed
	}
	for _, id := range g.field.NearCellIDs(ind) {
		if g.field.Marked(id) {
			continue
		}
		switch g.field.Reveal(id).Kind {
		case Mine:
			g.detonate(id)
			return ChordDeath
		case None:
			g.field.ChainReveal(id)
		}
	}
	g.logIfWon()
	return ChordSuccess
}

func (g *Game) detonate(ind int) {
	g.field.RevealAll()
	g.field.SetKiller(ind)
	g.quit = true
	logrus.WithFields(logrus.Fields{"game": g.ID, "outcome": "mine", "cell": ind}).Debug("minesweeper game over")
}

func (g *Game) logIfWon() {
	if g.IsWin() {
		logrus.WithFields(logrus.Fields{"game": g.ID, "outcome": "win"}).Debug("minesweeper game over")
	}
}

// IsWin reports a cleared field. A detonated or quit game is never won.
func (g *Game) IsWin() bool {
	if g.quit {
		return false
	}
	return g.field.IsVictory()
}

// Lost reports whether the game ended by detonation or quitting.
func (g *Game) Lost() bool { return g.quit }

// Finished reports whether the game reached a terminal state.
func (g *Game) Finished() bool { return g.quit || g.field.IsVictory() }

// Quit forfeits the game and reveals the board.
func (g *Game) Quit() {
	g.quit = true
	g.field.RevealAll()
	logrus.WithFields(logrus.Fields{"game": g.ID, "outcome": "quit"}).Debug("minesweeper game over")
}

// Restart clears the field for a new playthrough with the same settings.
func (g *Game) Restart() {
	g.quit = false
	g.field.Restart()
}

// Snapshot returns the full board state for rendering.
func (g *Game) Snapshot() types.FieldState {
	f := g.field
	s := types.FieldState{
		Width:    f.Width(),
		Height:   f.Height(),
		Mines:    f.Mines(),
		Flagged:  f.CountMarked(),
		Cursor:   types.BoardPos{X: f.X(), Y: f.Y()},
		Cells:    make([]types.CellState, f.Size()),
		Finished: g.Finished(),
	}
	for i := range s.Cells {
		s.Cells[i] = f.Cell(i).State()
	}
	return s
}
