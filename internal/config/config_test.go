package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/marcus/swipemodal/pkg/modal"
	"github.com/spf13/pflag"
)

func TestLoad(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		dir := t.TempDir()

		cfg, err := Load(Path(dir, ""), nil)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if *cfg != *Default() {
			t.Errorf("got %+v, want defaults %+v", *cfg, *Default())
		}
	})

	t.Run("existing file", func(t *testing.T) {
		dir := t.TempDir()
		path := Path(dir, "")
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("setup: mkdir failed: %v", err)
		}
		data := `{"direction": "bottom", "swipe_threshold": 12, "close_on_backdrop_press": false, "flex": 0.8}`
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatalf("setup: write failed: %v", err)
		}

		cfg, err := Load(path, nil)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if cfg.Direction != "bottom" {
			t.Errorf("Direction: got %q, want %q", cfg.Direction, "bottom")
		}
		if cfg.SwipeThreshold != 12 {
			t.Errorf("SwipeThreshold: got %d, want 12", cfg.SwipeThreshold)
		}
		if cfg.CloseOnBackdropPress {
			t.Error("CloseOnBackdropPress: got true, want false")
		}
		if cfg.Flex != 0.8 {
			t.Errorf("Flex: got %g, want 0.8", cfg.Flex)
		}
		if !cfg.SwipeToClose {
			t.Error("SwipeToClose should keep its default")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatalf("setup: write failed: %v", err)
		}
		if _, err := Load(path, nil); err == nil {
			t.Error("expected error for malformed config")
		}
	})

	t.Run("invalid direction", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		if err := os.WriteFile(path, []byte(`{"direction": "diagonal"}`), 0644); err != nil {
			t.Fatalf("setup: write failed: %v", err)
		}
		if _, err := Load(path, nil); err == nil {
			t.Error("expected error for invalid direction")
		}
	})
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SWIPEMODAL_DIRECTION", "top")
	t.Setenv("SWIPEMODAL_ANIMATION_MS", "250")

	cfg, err := Load(Path(t.TempDir(), ""), nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Direction != "top" {
		t.Errorf("Direction: got %q, want %q", cfg.Direction, "top")
	}
	if cfg.Duration() != 250*time.Millisecond {
		t.Errorf("Duration: got %v, want 250ms", cfg.Duration())
	}
}

func TestLoadFlagOverride(t *testing.T) {
	t.Setenv("SWIPEMODAL_DIRECTION", "top")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse([]string{"--direction", "right", "--swipe=false"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(Path(t.TempDir(), ""), fs)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Direction != "right" {
		t.Errorf("Direction: got %q, want flag value %q", cfg.Direction, "right")
	}
	if cfg.SwipeToClose {
		t.Error("SwipeToClose: got true, want false from flag")
	}
	if cfg.SwipeThreshold != modal.DefaultSwipeThreshold {
		t.Errorf("unset flag changed SwipeThreshold to %d", cfg.SwipeThreshold)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := Path(t.TempDir(), "")
	want := &Config{
		Direction:            "right",
		CloseOnBackdropPress: false,
		SwipeToClose:         true,
		SwipeThreshold:       30,
		AnimationMS:          200,
		FPS:                  30,
		Flex:                 0.75,
		BodyFile:             "body.md",
		LogFile:              "swipemodal.log",
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *got != *want {
		t.Errorf("got %+v, want %+v", *got, *want)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.FPS = 0
	if err := Save(Path(t.TempDir(), ""), cfg); err == nil {
		t.Error("expected error saving fps 0")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		edit    func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero duration", func(c *Config) { c.AnimationMS = 0 }, false},
		{"negative duration", func(c *Config) { c.AnimationMS = -1 }, true},
		{"zero threshold", func(c *Config) { c.SwipeThreshold = 0 }, true},
		{"flex over one", func(c *Config) { c.Flex = 1.5 }, true},
		{"full flex", func(c *Config) { c.Flex = 1 }, false},
		{"bad direction", func(c *Config) { c.Direction = "up" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.edit(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestModalProps(t *testing.T) {
	cfg := Default()
	cfg.Direction = "bottom"
	cfg.AnimationMS = 150
	cfg.CloseOnBackdropPress = false

	p, err := cfg.ModalProps()
	if err != nil {
		t.Fatalf("ModalProps failed: %v", err)
	}
	if p.Direction != modal.Bottom {
		t.Errorf("Direction: got %v, want bottom", p.Direction)
	}
	if p.Duration != 150*time.Millisecond {
		t.Errorf("Duration: got %v, want 150ms", p.Duration)
	}
	if p.CloseOnBackdropPress {
		t.Error("CloseOnBackdropPress: got true, want false")
	}
	if p.Visible {
		t.Error("props from config should start hidden")
	}
}

func TestLoadFileIgnoresEnv(t *testing.T) {
	t.Setenv("SWIPEMODAL_DIRECTION", "top")
	t.Setenv("SWIPEMODAL_SWIPE_THRESHOLD", "7")

	path := Path(t.TempDir(), "")
	saved := Default()
	saved.Direction = "right"
	if err := Save(path, saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Direction != "right" {
		t.Errorf("Direction: got %q, want file value %q", cfg.Direction, "right")
	}
	if cfg.SwipeThreshold != modal.DefaultSwipeThreshold {
		t.Errorf("SwipeThreshold: got %d, want default %d", cfg.SwipeThreshold, modal.DefaultSwipeThreshold)
	}

	withEnv, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if withEnv.Direction != "top" {
		t.Errorf("Load should still apply env, got %q", withEnv.Direction)
	}
}

func TestZeroAnimationReachesModal(t *testing.T) {
	cfg := Default()
	cfg.AnimationMS = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	p, err := cfg.ModalProps()
	if err != nil {
		t.Fatalf("ModalProps failed: %v", err)
	}
	m := modal.New(p, modal.WithSize(80, 24))
	if got := m.Props().Duration; got != 0 {
		t.Fatalf("modal duration = %v, want 0", got)
	}

	p.Visible = true
	layout := m.SetProps(p)()
	done := m.Update(layout)
	if done == nil {
		t.Fatal("expected immediate completion after layout")
	}
	m.Update(done())
	if m.Phase() != modal.PhaseOpen {
		t.Errorf("phase = %v, want open without animating", m.Phase())
	}
}
