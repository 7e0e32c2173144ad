package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"

	"charbot-engines/minesweeper"
	"charbot-engines/tictactoe"
	"charbot-engines/types"
)

var (
	cfgFile = "charbot-engines/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// MinesweeperConfig holds the difficulty presets offered to players.
type MinesweeperConfig struct {
	Presets map[string]minesweeper.Preset `json:"presets"`
}

// TictactoeConfig holds the reward table, keyed by difficulty name.
type TictactoeConfig struct {
	Points map[string]types.Points `json:"points"`
}

type Config struct {
	LogLevel    string            `json:"log_level"`
	Seed        int64             `json:"seed"`
	Minesweeper MinesweeperConfig `json:"minesweeper"`
	Tictactoe   TictactoeConfig   `json:"tictactoe"`
}

// InitConfig loads the user's config file over the defaults. A missing file
// is not an error.
func InitConfig() (*Config, error) {
	config := DefaultConfig.Clone()
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err = readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Clone returns a copy that shares no maps with c.
func (c Config) Clone() Config {
	out := c
	out.Minesweeper.Presets = make(map[string]minesweeper.Preset, len(c.Minesweeper.Presets))
	for k, v := range c.Minesweeper.Presets {
		out.Minesweeper.Presets[k] = v
	}
	out.Tictactoe.Points = make(map[string]types.Points, len(c.Tictactoe.Points))
	for k, v := range c.Tictactoe.Points {
		out.Tictactoe.Points[k] = v
	}
	return out
}

func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("log_level %q is not a log level", c.LogLevel)}
	}
	if len(c.Minesweeper.Presets) == 0 {
		return &InvalidConfig{"at least one minesweeper preset is required"}
	}
	for name, p := range c.Minesweeper.Presets {
		if err := p.Validate(); err != nil {
			return &InvalidConfig{fmt.Sprintf("preset %q: %v", name, err)}
		}
	}
	for name := range c.Tictactoe.Points {
		if _, ok := difficultyByName(name); !ok {
			return &InvalidConfig{fmt.Sprintf("unknown tictactoe difficulty %q", name)}
		}
	}
	return nil
}

// TictactoePoints returns the configured rewards for d, falling back to the
// built-in table.
func (c *Config) TictactoePoints(d tictactoe.Difficulty) types.Points {
	if p, ok := c.Tictactoe.Points[d.String()]; ok {
		return p
	}
	return tictactoe.DefaultPoints[d]
}

func difficultyByName(name string) (tictactoe.Difficulty, bool) {
	for d := tictactoe.Easy; d <= tictactoe.RandomDifficulty; d++ {
		if d.String() == name {
			return d, true
		}
	}
	return 0, false
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err = json.Unmarshal(configReader, a); err != nil {
		return fmt.Errorf("reading %s: %w", filePath, err)
	}
	return nil
}
