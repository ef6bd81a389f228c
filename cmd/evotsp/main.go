// Command evotsp solves a symmetric TSPLIB instance with the evolutionary
// engine and prints the best tour found.
//
//	evotsp [flags] <instance.tsp>
//
// Results go to stdout ("Section Type", per-generation progress, "Final best
// cost", "Best route"); structured logs go to stderr.
//
// Exit codes: 0 success, 1 runtime failure (unreadable or malformed
// instance, plot, metrics or progress output errors), 2 usage error,
// 130 interrupted.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/katalvlaran/evotsp/metrics"
	"github.com/katalvlaran/evotsp/report"
	"github.com/katalvlaran/evotsp/tsp"
	"github.com/katalvlaran/evotsp/tsplib"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without process globals; it returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	f, err := parseFlags(args, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case err != nil:
		if err != errUsage { // bare errUsage: usage text already printed
			fmt.Fprintln(stderr, "evotsp:", err)
		}
		return exitUsage
	}

	log, err := newLogger(stderr, f.logLevel)
	if err != nil {
		fmt.Fprintln(stderr, "evotsp:", err)
		return exitUsage
	}
	defer func() { _ = log.Sync() }()

	opts, err := f.options()
	if err != nil {
		log.Error("invalid options", zap.Error(err))
		return exitUsage
	}
	if !f.set["seed"] && opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	runID := uuid.NewString()
	log = log.With(zap.String("run_id", runID))

	inst, err := tsplib.ParseFile(f.instance)
	if err != nil {
		log.Error("cannot load instance", zap.String("path", f.instance), zap.Error(err))
		return exitFailure
	}
	log.Info("instance loaded",
		zap.String("name", inst.Name),
		zap.String("section", inst.Section),
		zap.Int("cities", inst.Matrix.N()),
	)

	fmt.Fprintf(stdout, "Section Type: %s\n", inst.Section)
	if f.printMatrix {
		if err = report.WriteMatrix(stdout, inst.Matrix); err != nil {
			log.Error("cannot print matrix", zap.Error(err))
			return exitFailure
		}
	}

	var reg *prometheus.Registry
	if f.metricsAddr != "" {
		reg = prometheus.NewRegistry()
		stopServer, err := serveMetrics(f.metricsAddr, reg, log)
		if err != nil {
			log.Error("cannot serve metrics", zap.String("addr", f.metricsAddr), zap.Error(err))
			return exitFailure
		}
		defer stopServer()
	}

	s := &session{
		f:      f,
		opts:   opts,
		inst:   inst,
		runID:  runID,
		reg:    reg,
		log:    log,
		stdout: stdout,
	}

	return s.solveAll(ctx)
}

// session carries everything one invocation shares across its runs.
type session struct {
	f      *cliFlags
	opts   tsp.Options
	inst   *tsplib.Instance
	runID  string
	reg    *prometheus.Registry
	log    *zap.Logger
	stdout io.Writer
}

// runOutcome is the result of one independent run.
type runOutcome struct {
	res     tsp.Result
	history *report.History
}

// solveAll executes every requested run and prints the results.
func (s *session) solveAll(ctx context.Context) int {
	var (
		best    *runOutcome
		finals  = make([]float64, 0, s.f.runs)
		started = time.Now()
	)
	for i := 0; i < s.f.runs; i++ {
		out, err := s.solveOne(ctx, i)
		if out != nil {
			finals = append(finals, out.res.BestCost)
			if best == nil || out.res.BestCost < best.res.BestCost {
				best = out
			}
		}
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				s.log.Warn("interrupted", zap.Int("run", i+1), zap.Error(err))
				s.printBest(best)
				return exitInterrupted
			}
			s.log.Error("solver failed", zap.Int("run", i+1), zap.Error(err))
			return exitFailure
		}
	}

	s.printBest(best)
	if s.f.runs > 1 {
		rs, err := report.SummarizeRuns(finals)
		if err == nil {
			fmt.Fprintf(s.stdout, "Runs: %d - Mean: %g - StdDev: %g - Min: %g - Max: %g\n",
				rs.Runs, rs.Mean, rs.StdDev, rs.Min, rs.Max)
		}
	}

	if s.f.plotPath != "" {
		title := fmt.Sprintf("%s (n=%d)", s.inst.Name, s.inst.Matrix.N())
		if err := best.history.Plot(s.f.plotPath, title); err != nil {
			s.log.Error("cannot write plot", zap.String("path", s.f.plotPath), zap.Error(err))
			return exitFailure
		}
		s.log.Info("plot written", zap.String("path", s.f.plotPath))
	}

	s.log.Info("done",
		zap.Int("runs", s.f.runs),
		zap.Float64("best_cost", best.res.BestCost),
		zap.String("elapsed", humanize.RelTime(started, time.Now(), "", "")),
	)

	return exitOK
}

// solveOne runs the engine once with seed opts.Seed+i. On cancellation the
// partial outcome is returned together with the error.
func (s *session) solveOne(ctx context.Context, i int) (*runOutcome, error) {
	opts := s.opts
	opts.Seed = s.opts.Seed + int64(i)

	out := &runOutcome{history: &report.History{}}
	observers := tsp.MultiObserver{out.history}
	var progress *report.ProgressPrinter
	if !s.f.quiet {
		progress = report.NewProgressPrinter(s.stdout)
		observers = append(observers, progress)
	}
	if s.reg != nil {
		id := s.runID
		if s.f.runs > 1 {
			id = fmt.Sprintf("%s-%d", s.runID, i+1)
		}
		c, err := metrics.NewCollector(s.reg, id)
		if err != nil {
			return nil, err
		}
		observers = append(observers, c)
	}
	opts.Observer = observers

	s.log.Debug("run started",
		zap.Int("run", i+1),
		zap.Int64("seed", opts.Seed),
		zap.Int("population", opts.PopulationSize),
		zap.Int("generations", opts.Generations),
		zap.Stringer("selection", opts.Selection),
		zap.Int("workers", opts.Workers),
	)
	start := time.Now()

	res, err := tsp.SolveContext(ctx, s.inst.Matrix, opts)
	if res.Best == nil {
		return nil, err
	}
	out.res = res
	if progress != nil && progress.Err() != nil {
		s.log.Error("cannot write progress", zap.Int("run", i+1), zap.Error(progress.Err()))
		if err == nil {
			err = fmt.Errorf("progress output: %w", progress.Err())
		}
	}

	fields := []zap.Field{
		zap.Int("run", i+1),
		zap.Int64("seed", opts.Seed),
		zap.Float64("best_cost", res.BestCost),
		zap.Int("best_generation", res.BestGeneration),
		zap.String("evaluations", humanize.Comma(int64(res.Evaluations))),
		zap.Duration("took", time.Since(start)),
	}
	if sum, serr := out.history.Summary(); serr == nil {
		fields = append(fields,
			zap.Float64("improvement", sum.Improvement),
			zap.Int("last_improvement", sum.LastImprovement),
			zap.Int("refinements", sum.Refinements),
		)
	}
	s.log.Info("run finished", fields...)

	return out, err
}

// printBest writes the final result lines of the best run.
func (s *session) printBest(best *runOutcome) {
	if best == nil {
		return
	}
	_ = report.FinalLine(s.stdout, best.res.BestCost)
	_ = report.RouteLine(s.stdout, best.res.Best)
}
