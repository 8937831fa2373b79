package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func parseArgs(t *testing.T, args []string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = args
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantROM   string
		wantClock int
		wantScale int
		wantDebug bool
	}{
		{
			name:      "defaults",
			args:      []string{"prog", "pong.ch8"},
			wantROM:   "pong.ch8",
			wantClock: 540,
			wantScale: 10,
		},
		{
			name:      "custom clock and scale",
			args:      []string{"prog", "-clock", "700", "-scale", "4", "pong.ch8"},
			wantROM:   "pong.ch8",
			wantClock: 700,
			wantScale: 4,
		},
		{
			name:      "debug flag",
			args:      []string{"prog", "-debug", "pong.ch8"},
			wantROM:   "pong.ch8",
			wantClock: 540,
			wantScale: 10,
			wantDebug: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parseArgs(t, tt.args)

			opts, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.wantROM, opts.ROM)
			assert.Equal(t, tt.wantClock, opts.Clock)
			assert.Equal(t, tt.wantScale, opts.Scale)
			assert.Equal(t, tt.wantDebug, opts.Debug)
		})
	}
}

func TestParseFlagsMissingROM(t *testing.T) {
	parseArgs(t, []string{"prog"})

	_, err := ParseFlags()
	assert.Error(t, err)

	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
}

func TestParseFlagsVersionWithoutROM(t *testing.T) {
	parseArgs(t, []string{"prog", "-version"})

	opts, err := ParseFlags()
	assert.NoError(t, err)
	assert.True(t, opts.Version)
}

func TestParseFlagsFlagAfterROM(t *testing.T) {
	parseArgs(t, []string{"prog", "pong.ch8", "-debug"})

	_, err := ParseFlags()
	assert.Error(t, err)
}

func TestParseFlagsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "zero scale", args: []string{"prog", "-scale", "0", "pong.ch8"}},
		{name: "too slow clock", args: []string{"prog", "-clock", "10", "pong.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parseArgs(t, tt.args)

			_, err := ParseFlags()
			assert.Error(t, err)
		})
	}
}
