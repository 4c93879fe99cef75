package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/nodeweb/internal/config"
)

func parse(t *testing.T, sub string, args ...string) *config.Config {
	t.Helper()
	cfg, err := parseErr(t, sub, args...)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	return cfg
}

func parseErr(t *testing.T, sub string, args ...string) (*config.Config, error) {
	t.Helper()
	root := newRootCmd()
	cmd, _, err := root.Find([]string{sub})
	if err != nil {
		t.Fatalf("find %s: %v", sub, err)
	}
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return loadConfig(cmd)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := parse(t, "stats")
	want := config.DefaultConfig()
	if cfg.Color != want.Color || cfg.NodeRadius != want.NodeRadius || cfg.Window != want.Window {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfigFlagsOverridePreset(t *testing.T) {
	cfg := parse(t, "stats", "--preset", "night", "--color", "#ff0000", "--seed", "9")
	if cfg.Color != "#ff0000" {
		t.Errorf("color = %s, want #ff0000", cfg.Color)
	}
	if cfg.Background != "#0b0c10" {
		t.Errorf("background = %s, want the preset's", cfg.Background)
	}
	if cfg.Seed != 9 {
		t.Errorf("seed = %d, want 9", cfg.Seed)
	}
}

func TestLoadConfigUnsetFlagsKeepFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	if err := os.WriteFile(path, []byte("node_radius: 5\ninteractive: false\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := parse(t, "tui", "--config", path)
	if cfg.NodeRadius != 5 || cfg.Interactive {
		t.Errorf("file values lost: radius %v interactive %v", cfg.NodeRadius, cfg.Interactive)
	}

	cfg = parse(t, "tui", "--config", path, "--preset", "ember", "--interactive")
	if cfg.NodeRadius != 3 {
		t.Errorf("radius = %v, want the preset's 3", cfg.NodeRadius)
	}
	if !cfg.Interactive {
		t.Error("--interactive not applied")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := parseErr(t, "stats", "--preset", "nope"); err == nil {
		t.Error("unknown preset accepted")
	}
	if _, err := parseErr(t, "stats", "--config", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing config file accepted")
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodeweb.toml")

	run := func(args ...string) error {
		root := newRootCmd()
		root.SetArgs(args)
		root.SetOut(io.Discard)
		root.SetErr(io.Discard)
		return root.Execute()
	}

	if err := run("config", "init", path); err != nil {
		t.Fatalf("config init: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if cfg.Color != config.DefaultColor {
		t.Errorf("color = %s", cfg.Color)
	}

	if err := run("config", "init", path); err == nil {
		t.Error("existing file overwritten without --force")
	}
	if err := run("config", "init", path, "--force", "--preset", "night"); err != nil {
		t.Fatalf("config init --force: %v", err)
	}
	cfg, err = config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Background != "#0b0c10" {
		t.Errorf("background = %s, want the night preset's", cfg.Background)
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"export", "png"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	if err := root.Execute(); err == nil {
		t.Error("png accepted")
	}
}

func TestLoadConfigRejectsBadWindow(t *testing.T) {
	tests := [][]string{
		{"--fps", "0"},
		{"--fps", "-30"},
		{"--width", "0"},
		{"--height", "-1"},
	}
	for _, args := range tests {
		if _, err := parseErr(t, "tui", args...); err == nil {
			t.Errorf("%v accepted", args)
		}
	}
}

func TestWindowTitleFromCanvas(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Canvas = "hero-network"
	if w := windowFor(cfg); w.Title != "hero-network" || w.FPS != cfg.Window.FPS {
		t.Errorf("window = %+v", w)
	}
	cfg.Canvas = ""
	if w := windowFor(cfg); w.Title != "nodeweb" {
		t.Errorf("title = %q, want nodeweb", w.Title)
	}
}

func TestExportWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.svg")
	root := newRootCmd()
	root.SetArgs([]string{"export", "svg", "--frames", "2", "--width", "200", "--height", "100", "-o", path})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	if err := root.Execute(); err != nil {
		t.Fatalf("export: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("export file missing or empty: %v", err)
	}
}

func TestExportRemovesFileOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frames.gif")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := newRootCmd()
	root.SetArgs([]string{"export", "gif", "--frames", "5", "-o", path})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	if err := root.ExecuteContext(ctx); err == nil {
		t.Fatal("cancelled export succeeded")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("partial export left behind: %v", err)
	}
}
