package overlay

import (
	"image"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/iburimskiy/draggable-clock/internal/config"
)

func TestTracker_Debounce(t *testing.T) {
	cfg := config.Default()
	win := newFakeWindow()
	clk := newFakeClock()
	tr := NewTracker(cfg, win, clk.Now, zerolog.Nop())

	win.pos = image.Pt(200, 150)
	if got := tr.Changed(); got != Accepted {
		t.Fatalf("first notification = %s, want accepted", got)
	}
	if cfg.WindowX != 200 || cfg.WindowY != 150 {
		t.Fatalf("config = %d,%d, want 200,150", cfg.WindowX, cfg.WindowY)
	}

	clk.Advance(300 * time.Millisecond)
	win.pos = image.Pt(220, 160)
	if got := tr.Changed(); got != Debounced {
		t.Errorf("0.3s later = %s, want debounced", got)
	}
	if cfg.WindowX != 200 {
		t.Errorf("debounced notification wrote WindowX=%d", cfg.WindowX)
	}

	clk.Advance(600 * time.Millisecond)
	win.pos = image.Pt(240, 170)
	if got := tr.Changed(); got != Accepted {
		t.Errorf("0.6s after second = %s, want accepted", got)
	}
	if cfg.WindowX != 240 || cfg.WindowY != 170 {
		t.Errorf("config = %d,%d, want 240,170", cfg.WindowX, cfg.WindowY)
	}
}

func TestTracker_ExactlyHalfSecondIsDebounced(t *testing.T) {
	cfg := config.Default()
	clk := newFakeClock()
	tr := NewTracker(cfg, newFakeWindow(), clk.Now, zerolog.Nop())

	tr.Changed()
	clk.Advance(500 * time.Millisecond)
	if got := tr.Changed(); got != Debounced {
		t.Errorf("at 0.5s = %s, want debounced", got)
	}
}

func TestTracker_Gates(t *testing.T) {
	tests := []struct {
		name  string
		pos   image.Point
		size  image.Point
		state State
		want  Outcome
	}{
		{"normal", image.Pt(5, 5), image.Pt(300, 300), StateNormal, Accepted},
		{"zero x", image.Pt(0, 5), image.Pt(300, 300), StateNormal, Invalid},
		{"negative y", image.Pt(5, -32000), image.Pt(300, 300), StateNormal, Invalid},
		{"zero size", image.Pt(5, 5), image.Pt(0, 300), StateNormal, Invalid},
		{"minimized", image.Pt(5, 5), image.Pt(300, 300), StateMinimized, IgnoredMinimized},
		{"maximized", image.Pt(5, 5), image.Pt(1920, 1080), StateMaximized, IgnoredMaximized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			win := newFakeWindow()
			win.pos, win.size, win.state = tt.pos, tt.size, tt.state
			tr := NewTracker(cfg, win, newFakeClock().Now, zerolog.Nop())

			if got := tr.Changed(); got != tt.want {
				t.Fatalf("outcome = %s, want %s", got, tt.want)
			}
			written := cfg.WindowX == tt.pos.X && cfg.WindowW == tt.size.X
			if written != (tt.want == Accepted) {
				t.Errorf("config written = %v for outcome %s", written, tt.want)
			}
		})
	}
}

func TestTracker_RejectionKeepsDebounceClock(t *testing.T) {
	cfg := config.Default()
	win := newFakeWindow()
	clk := newFakeClock()
	tr := NewTracker(cfg, win, clk.Now, zerolog.Nop())

	win.state = StateMinimized
	tr.Changed()

	// Rejected notifications do not start a debounce window.
	clk.Advance(100 * time.Millisecond)
	win.state = StateNormal
	if got := tr.Changed(); got != Accepted {
		t.Errorf("after minimized = %s, want accepted", got)
	}
}

func TestTracker_SettleBypassesDebounce(t *testing.T) {
	cfg := config.Default()
	win := newFakeWindow()
	clk := newFakeClock()
	tr := NewTracker(cfg, win, clk.Now, zerolog.Nop())

	tr.Changed()
	clk.Advance(100 * time.Millisecond)
	win.pos = image.Pt(640, 480)
	if got := tr.Settle(); got != Accepted {
		t.Fatalf("settle = %s, want accepted", got)
	}
	if cfg.WindowX != 640 {
		t.Errorf("WindowX = %d, want 640", cfg.WindowX)
	}

	win.state = StateMaximized
	if got := tr.Settle(); got != IgnoredMaximized {
		t.Errorf("settle while maximized = %s", got)
	}
}
