package runner

import (
	"testing"

	"github.com/vovakirdan/dash/internal/config"
)

func TestDifficultyRampStaysInBounds(t *testing.T) {
	cfg := config.DefaultRunnerConfig().Speed
	d := NewDifficulty(cfg)

	if d.SpeedMs() != cfg.InitialMs {
		t.Fatalf("initial speed = %v, want %v", d.SpeedMs(), cfg.InitialMs)
	}

	prev := d.SpeedMs()
	for i := 0; i < 10000; i++ {
		got := d.Update(16)
		if got > prev {
			t.Fatalf("speed increased at step %d: %v -> %v", i, prev, got)
		}
		if got < cfg.MinMs || got > cfg.InitialMs {
			t.Fatalf("speed %v outside [%v, %v]", got, cfg.MinMs, cfg.InitialMs)
		}
		prev = got
	}

	// 160 s of play at 16 ms/s covers the whole 1600 ms range.
	if !d.AtFloor() || d.SpeedMs() != cfg.MinMs {
		t.Errorf("speed after 160s = %v, want floor %v", d.SpeedMs(), cfg.MinMs)
	}

	d.Reset()
	if d.SpeedMs() != cfg.InitialMs {
		t.Errorf("speed after reset = %v, want %v", d.SpeedMs(), cfg.InitialMs)
	}
}

func TestDifficultyUpdate(t *testing.T) {
	tests := []struct {
		name string
		dtMs float64
		want float64
	}{
		{"one second", 1000, 3184},
		{"one frame", 16, 3200 - 0.256},
		{"zero delta", 0, 3200},
		{"negative delta", -100, 3200},
		{"huge delta clamps", 1e9, 1600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDifficulty(config.DefaultRunnerConfig().Speed)
			got := d.Update(tt.dtMs)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Update(%v) = %v, want %v", tt.dtMs, got, tt.want)
			}
		})
	}
}
