// SPDX-License-Identifier: MIT

// Command specpart partitions .csrrg graphs into p balanced parts and writes
// the result and assignment files next to each input (or into -out).
//
//	specpart [-config run.yaml] [-p 3] [-margin 10] [-workers 4] graf.csrrg ...
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/specpart/config"
	"github.com/katalvlaran/specpart/graphio"
	"github.com/katalvlaran/specpart/partition"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "specpart:", err)
		}
		os.Exit(1)
	}
}

// run parses args, partitions every input graph and writes its files.
func run(ctx context.Context, args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("specpart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath  = fs.String("config", "", "YAML settings file")
		parts    = fs.Int("p", 0, "number of parts (>= 2)")
		margin   = fs.Float64("margin", 0, "accepted imbalance in percent")
		seed     = fs.Int64("seed", 0, "random seed")
		restarts = fs.Int("restarts", 0, "k-means runs for p > 2")
		workers  = fs.Int("workers", 0, "graphs partitioned at once")
		outDir   = fs.String("out", "", "output directory")
		level    = fs.String("log-level", "", "debug, info, warn or error")
		dev      = fs.Bool("dev", false, "human-readable logs")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: specpart [flags] graph.csrrg ...")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no input graphs")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	// Flags given explicitly override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Parts = *parts
		case "margin":
			cfg.MaxMargin = margin
		case "seed":
			cfg.Seed = *seed
		case "restarts":
			cfg.Restarts = *restarts
		case "workers":
			cfg.Workers = *workers
		case "out":
			cfg.OutputDir = *outDir
		case "log-level":
			cfg.Log.Level = *level
		case "dev":
			cfg.Log.Development = *dev
		}
	})
	if err = cfg.Validate(); err != nil {
		return err
	}

	log, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	return batch(ctx, cfg, fs.Args(), log)
}

// errDuplicateSet reports two inputs that would write the same output files.
var errDuplicateSet = errors.New("duplicate output set")

// batch partitions inputs with at most cfg.Workers jobs in flight. The first
// failure cancels the jobs not yet finished.
func batch(ctx context.Context, cfg *config.Config, inputs []string, log *zap.Logger) error {
	indices, err := assignSets(cfg.OutputDir, inputs)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, in := range inputs {
		in := in
		index := indices[i]
		g.Go(func() error {
			return job(ctx, cfg, in, index, log.With(zap.String("graph", in), zap.Int("set", index)))
		})
	}

	return g.Wait()
}

// outputDir is where the files for input path land.
func outputDir(out, path string) string {
	if out == "" {
		out = filepath.Dir(path)
	}

	return filepath.Clean(out)
}

// assignSets picks the output set index of every input before any job runs.
// grafN inputs keep N (graf.csrrg keeps the unnumbered set 0); two of them
// sharing an output directory and index are rejected with errDuplicateSet.
// Other inputs take the smallest free index >= 1 of their directory, in
// argument order.
func assignSets(out string, inputs []string) ([]int, error) {
	type set struct {
		dir   string
		index int
	}
	owner := make(map[set]string, len(inputs))
	indices := make([]int, len(inputs))
	named := make([]bool, len(inputs))
	for i, in := range inputs {
		index, ok := graphio.GraphIndex(in)
		if !ok {
			continue
		}
		key := set{outputDir(out, in), index}
		if prev, taken := owner[key]; taken {
			return nil, fmt.Errorf("%w %d in %s: %s and %s", errDuplicateSet, index, key.dir, prev, in)
		}
		owner[key] = in
		indices[i], named[i] = index, true
	}

	next := make(map[string]int)
	for i, in := range inputs {
		if named[i] {
			continue
		}
		dir := outputDir(out, in)
		index := max(next[dir], 1)
		for {
			if _, taken := owner[set{dir, index}]; !taken {
				break
			}
			index++
		}
		owner[set{dir, index}] = in
		indices[i] = index
		next[dir] = index + 1
	}

	return indices, nil
}

// job runs one graph end to end.
func job(ctx context.Context, cfg *config.Config, path string, index int, log *zap.Logger) error {
	gr, err := graphio.LoadGraph(path)
	if err != nil {
		return err
	}

	opts := append(cfg.PartitionOptions(),
		partition.WithLogger(log),
		partition.WithContext(ctx))
	res, err := partition.Partition(gr.Model(), cfg.Parts, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	names, err := graphio.SaveResult(outputDir(cfg.OutputDir, path), index, graphio.NewResult(gr, cfg.Parts, res.EdgesCut, res.Margin), res.Labels)
	if err != nil {
		return err
	}
	log.Info("result written",
		zap.String("result", names.Result),
		zap.String("assignments", names.Assignments),
		zap.Bool("withinMargin", res.WithinMargin))

	return nil
}
