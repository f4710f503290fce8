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

// shapes measures the areas of shapes described in YAML or JSON documents.
//
// Each argument is a file path or a file:// URL. With no arguments, shapes
// measures a few built-in examples and shows how a division without a result
// is reported.
//
//	shapes -format json plots.yaml pond.json
//
// Any input that can't be read or decoded stops the run, with a non-zero
// exit status.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"lostluck.dev/shape-go"
	"lostluck.dev/shape-go/coders"
	"lostluck.dev/shape-go/internal/report"
	"lostluck.dev/shape-go/internal/runner"
)

// Config handles configuring the launcher
type Config struct {
	// Output
	Format    string
	Lang      string
	Precision int

	// Execution
	Parallel int
	Verbose  bool
}

func initFlags(fs *flag.FlagSet) *Config {
	var cfg Config
	fs.StringVar(&cfg.Format, "format", "text", "output format: text, json, or yaml")
	fs.StringVar(&cfg.Lang, "lang", "en", "BCP 47 language tag used to format text output")
	fs.IntVar(&cfg.Precision, "precision", 3, "decimal places of areas in text output")
	fs.IntVar(&cfg.Parallel, "parallel", 4, "maximum number of inputs evaluated at once")
	fs.BoolVar(&cfg.Verbose, "v", false, "log resource acquisition and release")
	return &cfg
}

// usageError is a problem with the invocation, rather than with the inputs.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func main() {
	cfg := initFlags(flag.CommandLine)
	flag.Parse()

	if err := run(context.Background(), cfg, flag.Args(), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if _, ok := err.(usageError); ok {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *Config, args []string, stdout, stderr io.Writer) error {
	tag, err := language.Parse(cfg.Lang)
	if err != nil {
		return usageError{errors.Wrapf(err, "invalid -lang %q", cfg.Lang)}
	}
	var format coders.Format
	if cfg.Format != "text" {
		if format, err = coders.ParseFormat(cfg.Format); err != nil {
			return usageError{errors.Wrap(err, "invalid -format")}
		}
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var ms []shape.Measurement
	if len(args) == 0 {
		ms = examples()
	} else {
		results, err := runner.Run(ctx, runner.Config{Inputs: args, Parallelism: cfg.Parallel, Logger: logger})
		if err != nil {
			return err
		}
		for _, r := range results {
			ms = append(ms, r.Measurements...)
		}
	}

	if format != "" {
		data, err := coders.Encode(format, ms)
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	}

	p := report.New(tag, cfg.Precision)
	if err := p.Measurements(stdout, ms); err != nil {
		return err
	}
	if len(args) == 0 {
		if err := p.Quotient(stdout, 10, 2); err != nil {
			return err
		}
		return p.Quotient(stdout, 10, 0)
	}
	return nil
}

func examples() []shape.Measurement {
	return []shape.Measurement{
		shape.Measure(shape.Rectangle{Width: 10, Height: 70}, shape.Name("rect")),
		shape.Measure(shape.Square{Side: 10}, shape.Name("square")),
		shape.Measure(shape.Circle{Radius: 4.5}, shape.Name("circle")),
	}
}
