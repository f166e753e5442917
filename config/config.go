package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/guxi11/reddot/detector"
)

type Config struct {
	// Hotkey is the global trigger combination.
	Hotkey string `yaml:"hotkey"`
	// Persistent re-enters detection after each successful selection.
	Persistent        bool `yaml:"persistent"`
	EnableFileLogging bool `yaml:"enable_file_logging"`
	// DetectDeadlineSec bounds one capture+detect job.
	DetectDeadlineSec int `yaml:"detect_deadline_sec"`

	Detector detector.Config `yaml:"detector"`

	// BadgeApps are process names whose badge counters the poller watches.
	BadgeApps    []string `yaml:"badge_apps"`
	BadgePollSec int      `yaml:"badge_poll_sec"`
}

const yamlFileName = "reddot.yaml"

func defaults() *Config {
	return &Config{
		Hotkey:            "Ctrl+Shift+Space",
		DetectDeadlineSec: 3,
		Detector:          detector.DefaultConfig(),
		BadgePollSec:      30,
	}
}

// Load builds the configuration in three layers: compiled defaults, then an
// optional reddot.yaml, then environment variables (with .env discovery in
// the current and executable directories).
func Load() (*Config, error) {
	cfg := defaults()

	if path, ok := findFile(yamlFileName); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %v", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %v", path, err)
		}
	}

	if path, ok := findFile(".env"); ok {
		godotenv.Load(path)
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("REDDOT_HOTKEY"); v != "" {
		cfg.Hotkey = v
	}
	if v := os.Getenv("REDDOT_PERSISTENT"); v != "" {
		cfg.Persistent = strings.ToLower(v) == "true"
	}
	if v := os.Getenv("ENABLE_FILE_LOGGING"); v != "" {
		cfg.EnableFileLogging = strings.ToLower(v) == "true"
	}
	if v := os.Getenv("REDDOT_DEADLINE_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DetectDeadlineSec = n
		}
	}
	if v := os.Getenv("REDDOT_BADGE_APPS"); v != "" {
		var apps []string
		for _, app := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(app); trimmed != "" {
				apps = append(apps, trimmed)
			}
		}
		cfg.BadgeApps = apps
	}
}

// findFile looks for name in the current directory, then next to the
// executable.
func findFile(name string) (string, bool) {
	paths := []string{name}
	if execPath, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(execPath), name))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}
