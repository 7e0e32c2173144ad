package config

import (
	"charbot-engines/minesweeper"
	"charbot-engines/tictactoe"
	"charbot-engines/types"
)

var DefaultConfig Config

func init() {
	presets := make(map[string]minesweeper.Preset, len(minesweeper.DefaultPresets))
	for name, p := range minesweeper.DefaultPresets {
		presets[name] = p
	}
	points := make(map[string]types.Points, len(tictactoe.DefaultPoints))
	for d, p := range tictactoe.DefaultPoints {
		points[d.String()] = p
	}

	DefaultConfig = Config{
		LogLevel: "info",
		Seed:     0,
		Minesweeper: MinesweeperConfig{
			Presets: presets,
		},
		Tictactoe: TictactoeConfig{
			Points: points,
		},
	}
}
