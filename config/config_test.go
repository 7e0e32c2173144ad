package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"

	"charbot-engines/minesweeper"
	"charbot-engines/tictactoe"
	"charbot-engines/types"
)

// useConfigHome points xdg at a fresh directory for the duration of the test.
func useConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
	return dir
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()
	path := filepath.Join(home, cfgFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestInitConfigDefaults(t *testing.T) {
	useConfigHome(t)
	cfg, err := InitConfig()
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.LogLevel != "info" || cfg.Seed != 0 {
		t.Errorf("log_level %q seed %d", cfg.LogLevel, cfg.Seed)
	}
	if len(cfg.Minesweeper.Presets) != len(minesweeper.DefaultPresets) {
		t.Errorf("%d presets, want %d", len(cfg.Minesweeper.Presets), len(minesweeper.DefaultPresets))
	}
	if got := cfg.TictactoePoints(tictactoe.Hard); got != tictactoe.DefaultPoints[tictactoe.Hard] {
		t.Errorf("hard points = %v", got)
	}
}

func TestInitConfigOverrides(t *testing.T) {
	home := useConfigHome(t)
	writeConfig(t, home, `{
  "log_level": "debug",
  "seed": 42,
  "minesweeper": {
    "presets": {
      "tiny": {"width": 4, "height": 4, "mines": 2, "win": {"xp": 1, "currency": 0}, "loss": {"xp": 0, "currency": 0}}
    }
  },
  "tictactoe": {
    "points": {
      "easy": {"win": {"xp": 9, "currency": 9}, "draw": {"xp": 0, "currency": 0}, "loss": {"xp": 0, "currency": 0}}
    }
  }
}`)
	cfg, err := InitConfig()
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.Seed != 42 {
		t.Errorf("log_level %q seed %d", cfg.LogLevel, cfg.Seed)
	}
	if p, ok := cfg.Minesweeper.Presets["tiny"]; !ok || p.Width != 4 || p.Mines != 2 {
		t.Errorf("tiny preset = %+v, %t", p, ok)
	}
	if _, ok := cfg.Minesweeper.Presets[minesweeper.Beginner]; !ok {
		t.Errorf("default presets should survive an override")
	}
	if got := cfg.TictactoePoints(tictactoe.Easy).Win; got != (types.Reward{XP: 9, Currency: 9}) {
		t.Errorf("easy win = %v", got)
	}
	if _, ok := DefaultConfig.Minesweeper.Presets["tiny"]; ok {
		t.Errorf("loading a file modified DefaultConfig")
	}
}

func TestInitConfigMalformed(t *testing.T) {
	home := useConfigHome(t)
	writeConfig(t, home, `{"log_level": `)
	if _, err := InitConfig(); err == nil {
		t.Fatalf("expected an error for a malformed file")
	}
}

func TestInitConfigInvalid(t *testing.T) {
	home := useConfigHome(t)
	writeConfig(t, home, `{"log_level": "loud"}`)
	_, err := InitConfig()
	var invalid *InvalidConfig
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want *InvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		ok     bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, false},
		{"no presets", func(c *Config) { c.Minesweeper.Presets = nil }, false},
		{"too wide", func(c *Config) {
			c.Minesweeper.Presets["wide"] = minesweeper.Preset{Width: 26, Height: 5, Mines: 1}
		}, false},
		{"too many mines", func(c *Config) {
			c.Minesweeper.Presets["full"] = minesweeper.Preset{Width: 4, Height: 4, Mines: 8}
		}, false},
		{"unknown difficulty", func(c *Config) {
			c.Tictactoe.Points["impossible"] = types.Points{}
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig.Clone()
			tt.modify(&c)
			err := c.Validate()
			if tt.ok && err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if !tt.ok {
				var invalid *InvalidConfig
				if !errors.As(err, &invalid) {
					t.Fatalf("err = %v, want *InvalidConfig", err)
				}
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	home := useConfigHome(t)
	c := DefaultConfig.Clone()
	c.Seed = 7
	c.LogLevel = "warn"
	if err := c.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, cfgFile)); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
	loaded, err := InitConfig()
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if loaded.Seed != 7 || loaded.LogLevel != "warn" {
		t.Errorf("loaded seed %d level %q", loaded.Seed, loaded.LogLevel)
	}
}
