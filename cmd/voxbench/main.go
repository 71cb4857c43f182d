// File: cmd/voxbench/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// voxbench drives every voxkit container through a simulated frame loop:
// the spin pool fills a density grid and its solid mask, a frame ring cycles
// per-frame resources, and an arena tracks mesh descriptors whose lifetime
// spans the frames in flight.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fulldump/goconfig"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/google/uuid"

	"github.com/momentics/voxkit/control"
	"github.com/momentics/voxkit/core/concurrency"
)

var VERSION = "dev"

func main() {

	c := control.Default()
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", VERSION)
		return
	}

	if err := c.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "voxbench:", err)
		os.Exit(2)
	}

	runID := uuid.NewString()
	level, _ := c.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("run", runID)
	concurrency.SetLogger(logger)

	if c.ShowConfig {
		if err := dump(os.Stdout, c); err != nil {
			logger.Error("print config", "error", err)
		}
	}

	rep, err := run(c, logger)
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
	rep.Run = runID
	rep.Version = VERSION

	if err := dump(os.Stdout, rep); err != nil {
		logger.Error("write report", "error", err)
		os.Exit(1)
	}
}

// dump writes v as indented JSON with map keys sorted.
func dump(w io.Writer, v any) error {
	if err := json.MarshalWrite(w, v, jsontext.WithIndent("    "), json.Deterministic(true)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
