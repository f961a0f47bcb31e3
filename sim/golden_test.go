package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gamus-sim/gamus/sim/internal/testutil"
	"github.com/gamus-sim/gamus/sim/table"
)

// TestSimulate_GoldenScenarios replays every scenario in
// testdata/golden_scenarios.yaml and checks the exact counters.
func TestSimulate_GoldenScenarios(t *testing.T) {
	dataset := testutil.LoadGoldenDataset(t)

	for _, sc := range dataset.Scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			wu := withStarts(t, table.Table(sc.Table), sc.Starts...)

			problems := wu.Simulate(sc.Limit)

			assert.Equal(t, sc.Expect.StartCollisions, problems.StartCollisions, "start collisions")
			assert.Equal(t, sc.Expect.OrphanEnds, problems.OrphanEnds, "orphan ends")
			assert.Equal(t, sc.Expect.UndoneOperations, wu.NumberOfUndoneOperations(), "undone operations")
			assert.Equal(t, sc.Expect.TotalTimeUsed, wu.TotalTimeUsed(), "total time used")
			if sc.Expect.Report != "" {
				assert.Equal(t, sc.Expect.Report, wu.Report())
			}
		})
	}
}
