// Package testutil provides shared test infrastructure for the simulator:
// the golden scenario dataset and its loader.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"gopkg.in/yaml.v3"
)

// GoldenDataset represents the structure of testdata/golden_scenarios.yaml.
type GoldenDataset struct {
	Scenarios []GoldenScenario `yaml:"scenarios"`
}

// GoldenScenario is one problem table, one candidate schedule and the
// expected outcome of simulating it.
type GoldenScenario struct {
	Name   string            `yaml:"name"`
	Table  [][]string        `yaml:"table"`
	Starts []int             `yaml:"starts"` // flat action order
	Limit  int               `yaml:"limit"`
	Expect GoldenExpectation `yaml:"expect"`
}

// GoldenExpectation holds the exact values a scenario must reproduce.
type GoldenExpectation struct {
	StartCollisions  int    `yaml:"start_collisions"`
	OrphanEnds       int    `yaml:"orphan_ends"`
	UndoneOperations int    `yaml:"undone_operations"`
	TotalTimeUsed    int    `yaml:"total_time_used"`
	Report           string `yaml:"report,omitempty"` // checked only when set
}

// LoadGoldenDataset loads the golden scenarios from the repo testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
// Unknown fields fail the load so a typo cannot silently disable a check.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden_scenarios.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Scenarios) == 0 {
		t.Fatal("golden dataset has no scenarios")
	}
	return &dataset
}
