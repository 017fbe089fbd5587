package osier

import (
	"strings"
	"testing"
)

func TestLoadRunConfigDefaults(t *testing.T) {
	cfg, err := LoadRunConfig("osiertestdefaults")
	if err != nil {
		t.Fatalf("LoadRunConfig: %v", err)
	}
	want := RunConfig{Title: "osier", Width: 800, Height: 600, TPS: 60, Resizable: true}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadRunConfigFromEnv(t *testing.T) {
	t.Setenv("OSIERTEST_TITLE", "demo")
	t.Setenv("OSIERTEST_WIDTH", "1024")
	t.Setenv("OSIERTEST_HEIGHT", "768")
	t.Setenv("OSIERTEST_DEBUG", "true")
	t.Setenv("OSIERTEST_RESIZABLE", "false")

	cfg, err := LoadRunConfig("osiertest")
	if err != nil {
		t.Fatalf("LoadRunConfig: %v", err)
	}
	want := RunConfig{Title: "demo", Width: 1024, Height: 768, TPS: 60, Debug: true}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadRunConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		errText string
	}{
		{"bad int", "OSIERTESTERR_WIDTH", "wide", "load run config"},
		{"zero size", "OSIERTESTERR_HEIGHT", "0", "invalid size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadRunConfig("osiertesterr")
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("error %q does not mention %q", err, tt.errText)
			}
		})
	}
}

func TestLoadRunConfigNonPositiveTPS(t *testing.T) {
	t.Setenv("OSIERTESTTPS_TPS", "-5")
	cfg, err := LoadRunConfig("osiertesttps")
	if err != nil {
		t.Fatalf("LoadRunConfig: %v", err)
	}
	if cfg.TPS != DefaultTPS {
		t.Errorf("TPS = %d, want %d", cfg.TPS, DefaultTPS)
	}
}

func TestGameAdapter(t *testing.T) {
	p, btn := newButtonPage()
	g := &game{page: p}

	w, h := g.Layout(400, 300)
	if w != 400 || h != 300 {
		t.Errorf("Layout = (%d, %d), want (400, 300)", w, h)
	}
	if sw, sh := p.ScreenSize(); sw != 400 || sh != 300 {
		t.Errorf("ScreenSize = (%v, %v), want (400, 300)", sw, sh)
	}
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	assertNear(t, "btn.X", btn.Bounds().X, 200)
}
