// Package engine is the entry point for a host application: it builds games
// from a Config and hands each one its own random source.
package engine

import (
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"charbot-engines/config"
	"charbot-engines/minesweeper"
	"charbot-engines/tictactoe"
)

// Engines creates games. It is safe for concurrent use; the games it returns
// are not.
type Engines struct {
	cfg *config.Config

	mu   sync.Mutex
	seed *rand.Rand
}

// New validates cfg and applies its log level. A nil cfg means
// config.DefaultConfig.
func New(cfg *config.Config) (*Engines, error) {
	if cfg == nil {
		c := config.DefaultConfig.Clone()
		cfg = &c
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logrus.SetLevel(level)
	return &Engines{cfg: cfg, seed: NewRand(cfg.Seed)}, nil
}

// NewRand returns a random source for seed. Seed 0 draws from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Config returns the configuration the engines were built with.
func (e *Engines) Config() *config.Config { return e.cfg }

// rng derives an independent source for one game.
func (e *Engines) rng() *rand.Rand {
	e.mu.Lock()
	defer e.mu.Unlock()
	return rand.New(rand.NewSource(e.seed.Int63()))
}

// NewTicTacToe starts a tic-tac-toe game for a host difficulty code 1..4.
func (e *Engines) NewTicTacToe(code int) (*tictactoe.Game, error) {
	difficulty, err := tictactoe.ParseDifficulty(code)
	if err != nil {
		return nil, err
	}
	return tictactoe.NewWithPoints(difficulty, e.cfg.TictactoePoints(difficulty), e.rng())
}

// NewMinesweeper starts a minesweeper game from a configured preset.
func (e *Engines) NewMinesweeper(preset string) (*minesweeper.Game, error) {
	return minesweeper.NewNamed(e.cfg.Minesweeper.Presets, preset, e.rng())
}

// NewCustomMinesweeper starts a minesweeper game with caller-chosen dimensions.
func (e *Engines) NewCustomMinesweeper(width, height, mines int) (*minesweeper.Game, error) {
	return minesweeper.New(width, height, mines, e.rng())
}

// Presets lists the configured minesweeper preset names.
func (e *Engines) Presets() []string {
	return minesweeper.PresetNames(e.cfg.Minesweeper.Presets)
}
