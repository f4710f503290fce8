// Licensed to the Apache Software Foundation (ASF) under one or more
// contributor license agreements.  See the NOTICE file distributed with
// this work for additional information regarding copyright ownership.
// The ASF licenses this file to You under the Apache License, Version 2.0
// (the "License"); you may not use this file except in compliance with
// the License.  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package runner evaluates shape documents end to end: acquire, decode,
// validate, and measure.
package runner

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"lostluck.dev/shape-go"
	"lostluck.dev/shape-go/coders"
	"lostluck.dev/shape-go/source"
)

// Config configures a Run.
type Config struct {
	Inputs      []string     // Paths or blob URLs of shape documents.
	Parallelism int          // Maximum inputs evaluated at once. Unlimited if <= 0.
	Logger      *slog.Logger // Defaults to slog.Default.
}

// Result holds the measurements of one input, in document order.
type Result struct {
	Input        string
	Measurements []shape.Measurement
}

// Run evaluates every input, and returns results in input order.
// The first failing input cancels the rest, and its error is returned.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("run", uuid.NewString()))

	results := make([]Result, len(cfg.Inputs))
	g, ctx := errgroup.WithContext(ctx)
	if cfg.Parallelism > 0 {
		g.SetLimit(cfg.Parallelism)
	}
	for i, input := range cfg.Inputs {
		g.Go(func() error {
			ms, err := evaluate(ctx, input, logger)
			if err != nil {
				return err
			}
			results[i] = Result{Input: input, Measurements: ms}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("run failed", slog.Any("error", err))
		return nil, err
	}
	logger.Info("run complete", slog.Int("inputs", len(cfg.Inputs)))
	return results, nil
}

func evaluate(ctx context.Context, input string, logger *slog.Logger) ([]shape.Measurement, error) {
	format, err := coders.FormatFor(input)
	if err != nil {
		return nil, err
	}

	var data []byte
	err = source.With(ctx, input, func(h *source.Handle) error {
		var err error
		data, err = io.ReadAll(h)
		return errors.Wrapf(err, "read %s", input)
	}, shape.Logger(logger))
	if err != nil {
		return nil, err
	}

	entries, err := coders.Decode(format, data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", input)
	}
	ms := make([]shape.Measurement, 0, len(entries))
	for i, e := range entries {
		s, err := e.Shape()
		if err != nil {
			return nil, errors.Wrapf(err, "%s: shape %d", input, i)
		}
		ms = append(ms, shape.Measure(s, shape.Name(e.Name)))
	}
	logger.Debug("evaluated", slog.String("input", input), slog.Int("shapes", len(ms)))
	return ms, nil
}
