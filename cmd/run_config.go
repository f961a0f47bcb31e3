package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// RunFileConfig is the YAML form of the run flags. Absent keys leave the
// corresponding flag at its default.
type RunFileConfig struct {
	Seed       *int64  `yaml:"seed"`
	Limit      *int    `yaml:"limit"`
	MinStart   *int    `yaml:"min_start"`
	MaxStart   *int    `yaml:"max_start"`
	Starts     []int   `yaml:"starts"`
	Log        *string `yaml:"log"`
	TraceLevel *string `yaml:"trace_level"`
	TraceMax   *int    `yaml:"trace_max"`
}

// loadRunFileConfig parses a run config with strict field checking:
// typos must cause errors instead of silently keeping defaults.
func loadRunFileConfig(path string) (*RunFileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config %s: %w", path, err)
	}
	var cfg RunFileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing run config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyRunFileConfig copies file values onto flags the user did not set on
// the command line. Explicit flags always win.
func applyRunFileConfig(cmd *cobra.Command, cfg *RunFileConfig) {
	flags := cmd.Flags()
	if cfg.Seed != nil && !flags.Changed("seed") {
		seed = *cfg.Seed
	}
	if cfg.Limit != nil && !flags.Changed("limit") {
		limit = *cfg.Limit
	}
	if cfg.MinStart != nil && !flags.Changed("min-start") {
		minStart = *cfg.MinStart
	}
	if cfg.MaxStart != nil && !flags.Changed("max-start") {
		maxStart = *cfg.MaxStart
	}
	if len(cfg.Starts) > 0 && !flags.Changed("starts") {
		starts = cfg.Starts
	}
	if cfg.Log != nil && !flags.Changed("log") {
		logLevel = *cfg.Log
	}
	if cfg.TraceLevel != nil && !flags.Changed("trace-level") {
		traceLevel = *cfg.TraceLevel
	}
	if cfg.TraceMax != nil && !flags.Changed("trace-max") {
		traceMaxRecord = *cfg.TraceMax
	}
}
