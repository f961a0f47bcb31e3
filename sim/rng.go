package sim

import (
	"math/rand"
)

// SimulationKey uniquely identifies a reproducible simulation run.
// Two runs with the same SimulationKey and the same problem table MUST draw
// identical start times and therefore produce identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// StartTimeRNG returns a fresh source for AdjustRandomTimes seeded with the
// key itself, so --seed maps 1:1 onto start times.
//
// Not thread-safe. Use one source per WorkUnit.
func (k SimulationKey) StartTimeRNG() *rand.Rand {
	return rand.New(rand.NewSource(int64(k)))
}
