package uptime

import (
	"testing"
	"time"
)

func TestElapsedAdvances(t *testing.T) {
	c := New(time.Second, nil)

	first := c.Elapsed()
	time.Sleep(10 * time.Millisecond)
	second := c.Elapsed()

	if second <= first {
		t.Errorf("elapsed did not advance: %v -> %v", first, second)
	}
}

func TestHeartbeatSpec(t *testing.T) {
	tests := []struct {
		interval time.Duration
		want     string
	}{
		{time.Second, "@every 1s"},
		{30 * time.Second, "@every 30s"},
		{500 * time.Millisecond, "@every 500ms"},
		{90 * time.Second, "@every 1m30s"},
	}

	for _, tt := range tests {
		if got := heartbeatSpec(tt.interval); got != tt.want {
			t.Errorf("heartbeatSpec(%v) = %q, want %q", tt.interval, got, tt.want)
		}
	}
}

func TestStartResetsSession(t *testing.T) {
	c := New(time.Second, nil)
	time.Sleep(10 * time.Millisecond)

	c.Start()
	defer c.Stop()

	if got := c.Elapsed(); got > 5*time.Millisecond {
		t.Errorf("Start should reset the origin, elapsed = %v", got)
	}
	if c.Ticks() != 0 {
		t.Errorf("Start should reset ticks, got %d", c.Ticks())
	}
}
