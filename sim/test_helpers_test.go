package sim

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gamus-sim/gamus/sim/table"
)

// newLoadedWorkUnit builds and loads a WorkUnit, failing the test on error.
func newLoadedWorkUnit(t testing.TB, tbl table.Table) *WorkUnit {
	t.Helper()
	wu := NewWorkUnit(tbl)
	require.NoError(t, wu.Load())
	return wu
}

// singleMachineTable builds a table with one machine "M1" where job i has one
// operation per entry of durations[i].
func singleMachineTable(durations ...[]int) table.Table {
	tbl := table.Table{{"job", "operation", "M1"}}
	for j, ops := range durations {
		for k, d := range ops {
			jobCell := ""
			if k == 0 {
				jobCell = "J" + strconv.Itoa(j+1)
			}
			tbl = append(tbl, []string{jobCell, "O" + strconv.Itoa(k+1), strconv.Itoa(d)})
		}
	}
	return tbl
}

// withStarts loads tbl and applies explicit start times in flat order.
func withStarts(t testing.TB, tbl table.Table, starts ...int) *WorkUnit {
	t.Helper()
	wu := newLoadedWorkUnit(t, tbl)
	require.NoError(t, wu.SetStartTimes(starts))
	return wu
}
