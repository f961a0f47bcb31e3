package cmd

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/gamus-sim/gamus/sim"
	"github.com/gamus-sim/gamus/sim/table"
	"github.com/gamus-sim/gamus/sim/trace"
)

var (
	// CLI flags for a single evaluation run
	problemPath    string // Problem table (.csv or .yaml)
	configPath     string // Optional YAML run config
	seed           int64  // Seed for random start times
	limit          int    // Number of simulated ticks
	minStart       int    // Lower bound of random start times (inclusive)
	maxStart       int    // Upper bound of random start times (inclusive)
	starts         []int  // Explicit start times in flat action order
	logLevel       string // Log verbosity level
	traceLevel     string // Decision trace level
	traceMaxRecord int    // Decision trace retention bound
	resultsPath    string // Optional JSON results file
	printReport    bool   // Print per-operation report
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "gamus",
	Short: "Discrete-time evaluator for job-shop schedules",
}

// runOptions is the resolved configuration of one run.
type runOptions struct {
	ProblemPath string
	Run         sim.RunConfig
	Trace       trace.TraceConfig
	ResultsPath string
	Report      bool
}

// runCmd loads a problem, assigns start times, simulates and prints metrics.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate one candidate schedule",
	Run: func(cmd *cobra.Command, args []string) {
		var fileCfg *RunFileConfig
		if configPath != "" {
			var err error
			fileCfg, err = loadRunFileConfig(configPath)
			if err != nil {
				logrus.Fatalf("Failed to load run config: %v", err)
			}
			applyRunFileConfig(cmd, fileCfg)
		}

		// The level may come from the config file, so set it before logging
		// anything about that file.
		if err := setLogLevel(logLevel); err != nil {
			logrus.Fatalf("%v", err)
		}
		if fileCfg != nil {
			logrus.Debugf("Applied run config %s: seed=%d limit=%d start=[%d,%d]",
				configPath, seed, limit, minStart, maxStart)
		}

		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level %q (want none or decisions)", traceLevel)
		}

		opts := runOptions{
			ProblemPath: problemPath,
			Run: sim.RunConfig{
				Seed:      seed,
				Limit:     limit,
				StartTime: sim.StartTimeConfig{MinStart: minStart, MaxStart: maxStart},
				Starts:    starts,
			},
			Trace:       trace.TraceConfig{Level: trace.TraceLevel(traceLevel), MaxRecords: traceMaxRecord},
			ResultsPath: resultsPath,
			Report:      printReport,
		}

		startTime := time.Now()
		if _, err := runSimulation(opts, os.Stdout); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// runSimulation performs one load → start times → simulate → report cycle.
func runSimulation(opts runOptions, out io.Writer) (*sim.Metrics, error) {
	if opts.Run.Limit < 0 {
		return nil, fmt.Errorf("limit must be >= 0, got %d", opts.Run.Limit)
	}
	tbl, err := table.LoadFile(opts.ProblemPath)
	if err != nil {
		return nil, err
	}
	wu := sim.NewWorkUnit(tbl)
	if err := wu.Load(); err != nil {
		return nil, err
	}

	if len(opts.Run.Starts) > 0 {
		if err := wu.SetStartTimes(opts.Run.Starts); err != nil {
			return nil, err
		}
	} else {
		rng := sim.NewSimulationKey(opts.Run.Seed).StartTimeRNG()
		st := opts.Run.StartTime
		if err := wu.AdjustRandomTimes(rng, st.MinStart, st.MaxStart); err != nil {
			return nil, err
		}
	}

	if opts.Trace.Level == trace.TraceLevelDecisions {
		wu.Trace = trace.NewSimulationTrace(opts.Trace)
	}

	logrus.Infof("Starting simulation of %s with limit=%d ticks, seed=%d", opts.ProblemPath, opts.Run.Limit, opts.Run.Seed)
	problems := wu.Simulate(opts.Run.Limit)

	metrics := sim.CollectMetrics(wu, problems, opts.Run.Limit)
	metrics.Print(out)
	if opts.Report {
		fmt.Fprintln(out, "=== Schedule Report ===")
		fmt.Fprint(out, wu.Report())
	}
	if wu.Trace.Enabled() {
		printTraceSummary(out, trace.Summarize(wu.Trace))
	}
	if opts.ResultsPath != "" {
		if err := metrics.SaveResults(opts.ResultsPath); err != nil {
			return nil, err
		}
	}
	return metrics, nil
}

// setLogLevel parses and applies a logrus level name.
func setLogLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", name)
	}
	logrus.SetLevel(level)
	return nil
}

func printTraceSummary(out io.Writer, s *trace.TraceSummary) {
	fmt.Fprintln(out, "=== Decision Trace ===")
	fmt.Fprintf(out, "Records (dropped)    : %d (%d)\n", s.TotalRecords, s.Dropped)
	fmt.Fprintf(out, "Claims / Completions : %d / %d\n", s.Claims, s.Completions)
	fmt.Fprintf(out, "Collisions / Orphans : %d / %d\n", s.Collisions, s.OrphanEnds)
	for _, machine := range slices.Sorted(maps.Keys(s.CollisionsByMachine)) {
		fmt.Fprintf(out, "  collisions on %s : %d\n", machine, s.CollisionsByMachine[machine])
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&problemPath, "problem", "", "Path to problem table (.csv, .yaml or .yml)")
	runCmd.Flags().StringVar(&configPath, "config", "", "Optional YAML run config; explicit flags take precedence")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random start times")
	runCmd.Flags().IntVar(&limit, "limit", 100, "Number of simulated ticks")
	runCmd.Flags().IntVar(&minStart, "min-start", 0, "Minimum random start time (inclusive)")
	runCmd.Flags().IntVar(&maxStart, "max-start", 20, "Maximum random start time (inclusive)")
	runCmd.Flags().IntSliceVar(&starts, "starts", nil, "Comma-separated start times, one per action in job/operation/machine order")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Decision trace level (none, decisions)")
	runCmd.Flags().IntVar(&traceMaxRecord, "trace-max", 0, "Maximum retained trace records (0 = unlimited)")
	runCmd.Flags().StringVar(&resultsPath, "results-path", "", "Write metrics as JSON to this file")
	runCmd.Flags().BoolVar(&printReport, "report", false, "Print the per-operation schedule report")
	_ = runCmd.MarkFlagRequired("problem")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
