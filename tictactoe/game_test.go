package tictactoe

import (
	"errors"
	"math/rand"
	"testing"

	"charbot-engines/types"
)

func TestParseDifficulty(t *testing.T) {
	for code, want := range map[int]Difficulty{1: Easy, 2: Medium, 3: Hard, 4: RandomDifficulty} {
		d, err := ParseDifficulty(code)
		if err != nil {
			t.Fatalf("ParseDifficulty(%d): %v", code, err)
		}
		if d != want {
			t.Fatalf("ParseDifficulty(%d) = %v, want %v", code, d, want)
		}
	}
	for _, code := range []int{0, 5, -1} {
		if _, err := ParseDifficulty(code); !errors.Is(err, ErrInvalidDifficulty) {
			t.Fatalf("ParseDifficulty(%d): expected ErrInvalidDifficulty, got %v", code, err)
		}
	}
}

func TestNewInvalidDifficulty(t *testing.T) {
	g, err := New(0, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrInvalidDifficulty) || g != nil {
		t.Fatalf("expected ErrInvalidDifficulty, got %v", err)
	}
}

func TestNewEasy(t *testing.T) {
	g, err := New(1, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !g.HumanFirst() || g.HumanPiece() != X {
		t.Fatal("human should play X on easy")
	}
	x, o := g.Players()
	if x.String() != "Human player" || o.String() != "Random player" {
		t.Fatalf("unexpected players %s / %s", x, o)
	}
	for i, p := range g.Board() {
		if p != Empty {
			t.Fatalf("cell %d should be empty, got %v", i, p)
		}
	}
	if g.ID == "" {
		t.Fatal("game should have an ID")
	}
	if g.PointsTable() != DefaultPoints[Easy] {
		t.Fatalf("unexpected points %+v", g.PointsTable())
	}
}

func TestNewHardComputerMovesFirst(t *testing.T) {
	g, err := New(3, rand.New(rand.NewSource(0)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.HumanFirst() || g.HumanPiece() != O {
		t.Fatal("computer should play X on hard")
	}
	placed := 0
	for _, p := range g.Board() {
		if p == X {
			placed++
		} else if p != Empty {
			t.Fatalf("unexpected piece %v", p)
		}
	}
	if placed != 1 {
		t.Fatalf("expected the computer's opening move, got %d pieces", placed)
	}
}

func TestNewFirstMoveMatchesTurnOrder(t *testing.T) {
	for _, code := range []int{2, 4} {
		for seed := int64(0); seed < 20; seed++ {
			g, err := New(code, rand.New(rand.NewSource(seed)))
			if err != nil {
				t.Fatalf("New(%d): %v", code, err)
			}
			pieces := g.board.Pieces()
			if g.HumanFirst() && pieces != 0 {
				t.Fatalf("code %d seed %d: human first but %d pieces placed", code, seed, pieces)
			}
			if !g.HumanFirst() && pieces != 1 {
				t.Fatalf("code %d seed %d: computer first but %d pieces placed", code, seed, pieces)
			}
			x, o := g.Players()
			human := x
			if !g.HumanFirst() {
				human = o
			}
			if human.String() != "Human player" {
				t.Fatalf("code %d seed %d: human seat holds %s", code, seed, human)
			}
		}
	}
}

func playOut(t *testing.T, g *Game) {
	t.Helper()
	human := HumanPlayer{}
	for !g.Finished() {
		idx := human.Play(g.board, g.HumanPiece())
		if !g.CellIsEmpty(idx) {
			t.Fatalf("human picked occupied cell %d", idx)
		}
		move, ok := g.Play(idx)
		if ok && !IsValidIndex(move) {
			t.Fatalf("computer returned invalid move %d", move)
		}
		if !ok && !g.Finished() {
			t.Fatal("no computer move but game not finished")
		}
	}
}

func TestPlayToCompletion(t *testing.T) {
	for code := 1; code <= 4; code++ {
		for seed := int64(0); seed < 10; seed++ {
			g, err := New(code, rand.New(rand.NewSource(seed)))
			if err != nil {
				t.Fatalf("New(%d): %v", code, err)
			}
			playOut(t, g)
			won, lost, draw := g.HasPlayerWon(), g.HasPlayerLost(), g.IsDraw()
			n := 0
			for _, b := range []bool{won, lost, draw} {
				if b {
					n++
				}
			}
			if n != 1 {
				t.Fatalf("code %d seed %d: expected exactly one outcome, won=%v lost=%v draw=%v\n%s",
					code, seed, won, lost, draw, g.board)
			}
		}
	}
}

func TestHardNeverLosesToFirstEmptyHuman(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		g, _ := New(3, rand.New(rand.NewSource(seed)))
		playOut(t, g)
		if g.HasPlayerWon() {
			t.Fatalf("seed %d: alpha-beta lost\n%s", seed, g.board)
		}
	}
}

func TestPlayReturnsNoMoveOnHumanWin(t *testing.T) {
	g, _ := New(1, rand.New(rand.NewSource(1)))
	// Human X on 0 and 1, O on 3 and 4, human to move.
	g.board = boardWith([]Index{0, 1}, []Index{3, 4})
	if _, ok := g.Play(2); ok {
		t.Fatal("computer should not move after the human wins")
	}
	if !g.HasPlayerWon() || g.HasPlayerLost() {
		t.Fatal("human should have won")
	}
	if w, ok := g.Winner(); !ok || w != X {
		t.Fatalf("expected winner X, got %v", w)
	}
	if g.Points() != DefaultPoints[Easy].Win {
		t.Fatalf("expected win reward, got %+v", g.Points())
	}
	before := g.board
	if _, ok := g.Play(5); ok {
		t.Fatal("finished game should not accept moves")
	}
	if g.board != before {
		t.Fatal("finished game should not change")
	}
}

func TestPlayReturnsNoMoveOnFullBoard(t *testing.T) {
	g, _ := New(1, rand.New(rand.NewSource(1)))
	// X O X / X O O / O X .  human X takes the last cell without a line.
	g.board = boardWith([]Index{0, 2, 3, 7}, []Index{1, 4, 5, 6})
	if _, ok := g.Play(8); ok {
		t.Fatal("computer should not move on a full board")
	}
	if !g.IsDraw() {
		t.Fatal("expected draw")
	}
	if g.Points() != DefaultPoints[Easy].Draw {
		t.Fatalf("expected draw reward, got %+v", g.Points())
	}
}

func TestPointsOnLoss(t *testing.T) {
	g, _ := New(3, rand.New(rand.NewSource(0)))
	g.board = boardWith([]Index{0, 1, 2}, []Index{3, 4})
	if !g.HasPlayerLost() {
		t.Fatal("human playing O should have lost")
	}
	if g.Points() != (types.Reward{}) {
		t.Fatalf("expected empty loss reward, got %+v", g.Points())
	}
}

func TestDefaultPoints(t *testing.T) {
	cases := []struct {
		d    Difficulty
		want types.Points
	}{
		{Easy, types.Points{Win: types.Reward{XP: 1, Currency: 1}, Draw: types.Reward{XP: 1}}},
		{Medium, types.Points{Win: types.Reward{XP: 2, Currency: 2}, Draw: types.Reward{XP: 2}}},
		{Hard, types.Points{Win: types.Reward{XP: 2, Currency: 3}, Draw: types.Reward{XP: 2, Currency: 1}}},
		{RandomDifficulty, types.Points{Win: types.Reward{XP: 1, Currency: 1}, Draw: types.Reward{XP: 1}}},
	}
	for _, tc := range cases {
		if got := DefaultPoints[tc.d]; got != tc.want {
			t.Errorf("%v: got %+v, want %+v", tc.d, got, tc.want)
		}
	}
}
