package tui

import (
	"testing"
	"time"
)

func TestTickInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{rate: 60, want: time.Second / 60},
		{rate: 10, want: 100 * time.Millisecond},
		{rate: 1, want: time.Second},
		{rate: 0, want: time.Second / 60},
		{rate: -5, want: time.Second / 60},
	}

	for _, tt := range tests {
		if got := tickInterval(tt.rate); got != tt.want {
			t.Errorf("tickInterval(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}
}

func TestTickCmdZeroRate(t *testing.T) {
	msg := tickCmd(0)()
	if _, ok := msg.(TickMsg); !ok {
		t.Errorf("tickCmd(0)() = %T, want TickMsg", msg)
	}
}
