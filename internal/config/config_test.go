package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/hoopshot/internal/game/hoops"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Sim.TickRate != 60 {
		t.Errorf("expected tick rate 60, got %d", cfg.Sim.TickRate)
	}
	if cfg.Sim.Realtime {
		t.Error("expected realtime to be false by default")
	}
	if cfg.Physics != hoops.DefaultTuning() {
		t.Errorf("unexpected physics defaults %+v", cfg.Physics)
	}
	if cfg.Camera.Yaw != -90 {
		t.Errorf("expected camera yaw -90, got %v", cfg.Camera.Yaw)
	}
	if cfg.Curves.Enabled {
		t.Error("expected aim guide to be off by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "hoopshot.yaml")

	yamlContent := `
sim:
  tick_rate: 120
  frames: 900
  script: throws.yaml

physics:
  gravity: 9.81
  win_score: 5

court:
  hoop_base: {x: 1, y: -10, z: -20}

camera:
  position: {x: 0, y: 2, z: 6}
  sensitivity: 0.2

curves:
  enabled: true
  lift: 4

logging:
  level: "debug"
  log_file: "sim.log"
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Sim.TickRate != 120 || cfg.Sim.Frames != 900 || cfg.Sim.Script != "throws.yaml" {
		t.Errorf("unexpected sim section %+v", cfg.Sim)
	}
	if cfg.Physics.Gravity != 9.81 {
		t.Errorf("expected gravity 9.81, got %v", cfg.Physics.Gravity)
	}
	if cfg.Physics.WinScore != 5 {
		t.Errorf("expected win score 5, got %d", cfg.Physics.WinScore)
	}
	// untouched keys keep their defaults
	if cfg.Physics.LaunchSpeed != 15 {
		t.Errorf("expected default launch speed 15, got %v", cfg.Physics.LaunchSpeed)
	}
	if cfg.Court.HoopBase.Z != -20 || cfg.Court.HoopBase.X != 1 {
		t.Errorf("unexpected hoop base %+v", cfg.Court.HoopBase)
	}
	if cfg.Camera.Position.Z != 6 || cfg.Camera.Sensitivity != 0.2 {
		t.Errorf("unexpected camera %+v", cfg.Camera)
	}
	if cfg.Camera.Yaw != -90 {
		t.Errorf("expected default yaw to survive, got %v", cfg.Camera.Yaw)
	}
	if !cfg.Curves.Enabled || cfg.Curves.Lift != 4 || cfg.Curves.Samples != 30 {
		t.Errorf("unexpected curves %+v", cfg.Curves)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "sim.log" {
		t.Errorf("unexpected logging %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
sim:
  tick_rate: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	err := loadFromFile(Default(), "/nonexistent/path/hoopshot.yaml")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick rate", func(c *Config) { c.Sim.TickRate = 0 }},
		{"negative frames", func(c *Config) { c.Sim.Frames = -1 }},
		{"bad physics", func(c *Config) { c.Physics.ArcSamples = 0 }},
		{"guide without samples", func(c *Config) { c.Curves.Enabled = true; c.Curves.Samples = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}

	cfg := Default()
	cfg.Physics.BallRadius = 0
	if err := cfg.Validate(); !errors.Is(err, hoops.ErrInvalidTuning) {
		t.Errorf("expected wrapped ErrInvalidTuning, got %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "hoopshot.yaml"), []byte("sim:\n  frames: 10\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path != "./hoopshot.yaml" {
		t.Errorf("expected ./hoopshot.yaml, got %q", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Curves.Enabled {
					t.Error("expected aim guide with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "script flag",
			setup: func() { *flagScript = "replay.yaml" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Sim.Script != "replay.yaml" {
					t.Errorf("expected script replay.yaml, got %s", cfg.Sim.Script)
				}
			},
			teardown: func() { *flagScript = "" },
		},
		{
			name: "frames and tick rate",
			setup: func() {
				*flagFrames = 300
				*flagTickRate = 30
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Sim.Frames != 300 || cfg.Sim.TickRate != 30 {
					t.Errorf("unexpected sim %+v", cfg.Sim)
				}
			},
			teardown: func() {
				*flagFrames = 0
				*flagTickRate = 0
			},
		},
		{
			name:  "realtime flag",
			setup: func() { *flagRealtime = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Sim.Realtime {
					t.Error("expected realtime with realtime flag")
				}
			},
			teardown: func() { *flagRealtime = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "hoopshot.yaml")

	yamlContent := `
sim:
  tick_rate: 30
  frames: 100
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagFrames = 500
	defer func() {
		*flagConfig = ""
		*flagFrames = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Sim.Frames != 500 {
		t.Errorf("expected frames 500 from flag, got %d", cfg.Sim.Frames)
	}
	if cfg.Sim.TickRate != 30 {
		t.Errorf("expected tick rate 30 from file, got %d", cfg.Sim.TickRate)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "hoopshot.yaml")
	if err := os.WriteFile(configPath, []byte("sim:\n  tick_rate: -5\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "hoopshot.yaml")

	cfg := Default()
	cfg.Sim.Frames = 42
	cfg.Physics.Gravity = 3
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Sim.Frames != 42 || loaded.Physics.Gravity != 3 {
		t.Errorf("round trip lost values: %+v %+v", loaded.Sim, loaded.Physics)
	}
}
