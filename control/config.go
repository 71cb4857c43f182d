// control/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Typed run configuration. Fields carry usage tags so the struct can be
// filled from flags and environment by goconfig.

package control

import (
	"log/slog"
	"strings"

	"github.com/momentics/voxkit/api"
)

// Config drives a voxkit run.
type Config struct {
	Workers       int    `usage:"spin pool workers, 0 means GOMAXPROCS-1"`
	PinThreads    bool   `usage:"pin spin workers to CPUs"`
	SpinBudget    int    `usage:"empty polls before a spinning worker yields"`
	Rounds        int    `usage:"number of frames to simulate"`
	FrameDepth    int    `usage:"frames in flight"`
	GridX         int    `usage:"grid extent along X"`
	GridY         int    `usage:"grid extent along Y"`
	GridZ         int    `usage:"grid extent along Z"`
	ArenaCapacity int    `usage:"initial arena capacity"`
	LogLevel      string `usage:"log level: debug | info | warn | error"`
	ShowConfig    bool   `usage:"print config"`
	Version       bool   `usage:"show version and exit"`
}

// Default returns the configuration used when no flag overrides it.
func Default() Config {
	return Config{
		Workers:       0,
		SpinBudget:    4096,
		Rounds:        60,
		FrameDepth:    2,
		GridX:         64,
		GridY:         64,
		GridZ:         64,
		ArenaCapacity: 16,
		LogLevel:      "info",
	}
}

// Validate checks ranges and returns an *api.Error naming the first bad field.
func (c Config) Validate() error {
	check := []struct {
		field string
		value int
		min   int
	}{
		{"Workers", c.Workers, 0},
		{"SpinBudget", c.SpinBudget, 1},
		{"Rounds", c.Rounds, 0},
		{"FrameDepth", c.FrameDepth, 1},
		{"GridX", c.GridX, 0},
		{"GridY", c.GridY, 0},
		{"GridZ", c.GridZ, 0},
		{"ArenaCapacity", c.ArenaCapacity, 0},
	}
	for _, f := range check {
		if f.value < f.min {
			return api.NewError(api.ErrCodeInvalidArgument, "config: value out of range").
				WithContext("field", f.field).
				WithContext("value", f.value).
				WithContext("min", f.min)
		}
	}
	if _, err := c.Level(); err != nil {
		return api.NewError(api.ErrCodeInvalidArgument, "config: unknown log level").
			WithContext("field", "LogLevel").
			WithContext("value", c.LogLevel)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel)))
	return l, err
}
