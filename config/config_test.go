package config

import (
	"os"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := defaults()
	if cfg.Hotkey == "" {
		t.Error("default hotkey must not be empty")
	}
	if cfg.DetectDeadlineSec <= 0 {
		t.Error("default detection deadline must be positive")
	}
	if cfg.Detector.MergeGap != 3 {
		t.Errorf("default merge gap = %d, expected 3", cfg.Detector.MergeGap)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("REDDOT_HOTKEY", "Ctrl+Alt+B")
	t.Setenv("REDDOT_PERSISTENT", "TRUE")
	t.Setenv("REDDOT_DEADLINE_SEC", "7")
	t.Setenv("REDDOT_BADGE_APPS", "mail.exe, chat.exe ,")

	cfg := defaults()
	applyEnv(cfg)

	if cfg.Hotkey != "Ctrl+Alt+B" {
		t.Errorf("hotkey = %q", cfg.Hotkey)
	}
	if !cfg.Persistent {
		t.Error("persistent should be true")
	}
	if cfg.DetectDeadlineSec != 7 {
		t.Errorf("deadline = %d, expected 7", cfg.DetectDeadlineSec)
	}
	if len(cfg.BadgeApps) != 2 || cfg.BadgeApps[0] != "mail.exe" || cfg.BadgeApps[1] != "chat.exe" {
		t.Errorf("badge apps = %v", cfg.BadgeApps)
	}
}

func TestApplyEnvIgnoresInvalidDeadline(t *testing.T) {
	t.Setenv("REDDOT_DEADLINE_SEC", "not-a-number")
	cfg := defaults()
	applyEnv(cfg)
	if cfg.DetectDeadlineSec != 3 {
		t.Errorf("deadline = %d, expected default 3", cfg.DetectDeadlineSec)
	}
}

func TestYamlLayer(t *testing.T) {
	dir := t.TempDir()
	path := dir + string(os.PathSeparator) + yamlFileName
	data := []byte("hotkey: Ctrl+Alt+Y\ndetector:\n  merge_gap: 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	old, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Hotkey != "Ctrl+Alt+Y" {
		t.Errorf("hotkey = %q, expected yaml value", cfg.Hotkey)
	}
	if cfg.Detector.MergeGap != 5 {
		t.Errorf("merge gap = %d, expected 5", cfg.Detector.MergeGap)
	}
	// Untouched fields keep their defaults.
	if cfg.DetectDeadlineSec != 3 {
		t.Errorf("deadline = %d, expected default", cfg.DetectDeadlineSec)
	}
}
