package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/evotsp/config"
	"github.com/katalvlaran/evotsp/tsp"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	configPath  string
	seed        int64
	workers     int
	selection   string
	generations int
	population  int
	runs        int
	plotPath    string
	metricsAddr string
	logLevel    string
	quiet       bool
	printMatrix bool

	instance string
	set      map[string]bool
}

// parseFlags parses args. Help requests surface as flag.ErrHelp.
func parseFlags(args []string, stderr io.Writer) (*cliFlags, error) {
	fs := flag.NewFlagSet("evotsp", flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := &cliFlags{set: make(map[string]bool)}
	fs.StringVar(&f.configPath, "config", "", "YAML options file (flags override it)")
	fs.Int64Var(&f.seed, "seed", 0, "RNG seed (0 = derive from the clock)")
	fs.IntVar(&f.workers, "workers", 1, "goroutines for cost evaluation and 2-opt")
	fs.StringVar(&f.selection, "selection", "rank", "parent selection: rank|tournament")
	fs.IntVar(&f.generations, "generations", tsp.DefaultGenerations, "generation budget")
	fs.IntVar(&f.population, "population", tsp.DefaultPopulationSize, "population size")
	fs.IntVar(&f.runs, "runs", 1, "independent runs (seeds seed, seed+1, ...)")
	fs.StringVar(&f.plotPath, "plot", "", "write a convergence plot of the best run to this file")
	fs.StringVar(&f.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on host:port")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level: debug|info|warn|error")
	fs.BoolVar(&f.quiet, "quiet", false, "suppress per-generation progress lines")
	fs.BoolVar(&f.printMatrix, "print-matrix", false, "print the distance matrix before solving")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: evotsp [flags] <instance.tsp>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, errUsage // the flag package already reported it
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	if fs.NArg() != 1 {
		fs.Usage()
		return nil, errUsage
	}
	if f.runs < 1 {
		return nil, fmt.Errorf("%w: -runs must be >= 1, got %d", errUsage, f.runs)
	}
	f.instance = fs.Arg(0)

	return f, nil
}

// options builds the solver options: defaults, then the config file, then
// every flag given explicitly on the command line.
func (f *cliFlags) options() (tsp.Options, error) {
	o := tsp.DefaultOptions()
	if f.configPath != "" {
		var err error
		if o, err = config.Load(f.configPath, o); err != nil {
			return o, err
		}
	}

	if f.set["seed"] {
		o.Seed = f.seed
	}
	if f.set["workers"] {
		o.Workers = f.workers
	}
	if f.set["selection"] {
		kind, err := tsp.ParseSelection(f.selection)
		if err != nil {
			return o, fmt.Errorf("-selection %q: %w", f.selection, err)
		}
		o.Selection = kind
	}
	if f.set["generations"] {
		o.Generations = f.generations
	}
	if f.set["population"] {
		o.PopulationSize = f.population
		o.EliteSize = min(o.EliteSize, o.PopulationSize)
	}

	return o, o.Validate()
}
