package hud

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00.0"},
		{-time.Second, "00:00.0"},
		{125 * time.Millisecond, "00:00.1"},
		{time.Second, "00:01.0"},
		{61*time.Second + 250*time.Millisecond, "01:01.2"},
		{10*time.Minute + 2950*time.Millisecond, "10:02.9"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatElapsed(tt.d), "%v", tt.d)
	}
}
