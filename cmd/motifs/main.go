// Command motifs reports which 3- and 4-node motifs of an undirected graph
// are over- or under-represented against a degree-preserving null model.
//
// Usage:
//
//	motifs [flags] graph.edges [more.mtx ...]
//
// Datasets come from the arguments, or from the config file when none are
// given. For every dataset it prints a per-motif summary and writes
// <out>/<graph id>.csv, <out>/<graph id>_counts.csv and
// <out>/<graph id>_z_scores.csv.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/plan-systems/klog"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/calganaygun/networks-playground/analysis"
	"github.com/calganaygun/networks-playground/cache"
	"github.com/calganaygun/networks-playground/config"
	"github.com/calganaygun/networks-playground/edgelist"
	"github.com/calganaygun/networks-playground/metrics"
	"github.com/calganaygun/networks-playground/nullmodel"
	"github.com/calganaygun/networks-playground/report"
)

const (
	exitOK = iota
	exitFailed
	exitUsage
)

type cliFlags struct {
	configPath  string
	ensemble    int
	minViable   int
	seedBase    int64
	workers     int
	pairing     string
	attempts    int
	cacheKind   string
	cachePath   string
	outputDir   string
	metricsFile string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fset := flag.NewFlagSet("motifs", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	defer klog.Flush()

	var f cliFlags
	fset.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fset.IntVar(&f.ensemble, "ensemble", 0, "number of random graphs")
	fset.IntVar(&f.minViable, "min-viable", 0, "fewest surviving random graphs accepted")
	fset.Int64Var(&f.seedBase, "seed", 0, "seed of random graph 0; graph i uses seed+i")
	fset.IntVar(&f.workers, "workers", 0, "random graphs processed concurrently")
	fset.StringVar(&f.pairing, "pairing", "", "stub pairing policy: sequential or strict")
	fset.IntVar(&f.attempts, "max-attempts", 0, "reshuffles per random graph")
	fset.StringVar(&f.cacheKind, "cache", "", "random graph cache: none, memory, dir or badger")
	fset.StringVar(&f.cachePath, "cache-path", "", "cache directory (dir and badger backends)")
	fset.StringVar(&f.outputDir, "out", "", "output directory")
	fset.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file on exit")
	if err := fset.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := loadConfig(fset, &f)
	if err != nil {
		klog.Errorf("%v", err)
		return exitUsage
	}
	datasets := fset.Args()
	if len(datasets) == 0 {
		datasets = cfg.Datasets
	}
	if len(datasets) == 0 {
		fmt.Fprintln(os.Stderr, "motifs: no datasets given")
		fset.Usage()
		return exitUsage
	}

	store, err := cache.Open(cfg.Cache.Backend, cfg.Cache.Path)
	if err != nil {
		klog.Errorf("%v", err)
		return exitUsage
	}
	var graphCache nullmodel.Cache
	if store != nil {
		defer store.Close()
		graphCache = store
	}

	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	if err != nil {
		klog.Errorf("%v", err)
		return exitFailed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	an := analysis.New(append(analysis.FromConfig(cfg, graphCache), analysis.WithMetrics(m))...)
	code := exitOK
	for _, path := range datasets {
		if err := analyze(ctx, an, cfg, path); err != nil {
			klog.Errorf("%s: %v", path, err)
			code = exitFailed
		}
		if ctx.Err() != nil {
			break
		}
	}

	if f.metricsFile != "" {
		if err := prometheus.WriteToTextfile(f.metricsFile, reg); err != nil {
			klog.Errorf("metrics: %v", err)
			code = exitFailed
		}
	}
	return code
}

// loadConfig reads the optional config file and applies explicitly set
// flags on top.
func loadConfig(fset *flag.FlagSet, f *cliFlags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}

	fset.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "ensemble":
			cfg.Ensemble.Size = f.ensemble
			if !isSet(fset, "min-viable") {
				cfg.Ensemble.MinViable = 0
			}
		case "min-viable":
			cfg.Ensemble.MinViable = f.minViable
		case "seed":
			cfg.Ensemble.SeedBase = f.seedBase
		case "workers":
			cfg.Ensemble.Workers = f.workers
		case "pairing":
			cfg.Randomizer.Pairing = f.pairing
		case "max-attempts":
			cfg.Randomizer.MaxAttempts = f.attempts
		case "cache":
			cfg.Cache.Backend = f.cacheKind
		case "cache-path":
			cfg.Cache.Path = f.cachePath
		case "out":
			cfg.OutputDir = f.outputDir
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isSet(fset *flag.FlagSet, name string) bool {
	set := false
	fset.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

func analyze(ctx context.Context, an *analysis.Analyzer, cfg *config.Config, path string) error {
	g, st, err := edgelist.ReadFile(path)
	if err != nil {
		return err
	}
	klog.Infof("loaded %s: %d vertices, %d edges (%d lines, %d dropped)",
		path, g.VertexCount(), g.EdgeCount(), st.Lines, st.Dropped())

	if d := cfg.Timeout(); d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	rep, err := an.Run(ctx, path, g)
	if err != nil {
		return err
	}

	fmt.Printf("%s (graph id %s, %d/%d random graphs, %d cached)\n",
		path, rep.GraphID, len(rep.Members), rep.Requested, rep.CachedMembers())
	if err = report.WriteSummary(os.Stdout, rep.Significance); err != nil {
		return err
	}
	files, err := rep.WriteFiles(cfg.OutputDir)
	if err != nil {
		return err
	}
	for _, p := range files {
		klog.Infof("wrote %s", p)
	}
	return nil
}
