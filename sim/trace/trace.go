// Package trace records the per-tick decisions of a simulation run: machine
// claims, start collisions, completions and orphan ends.
// This package has no dependencies on sim/; it stores plain data types.
package trace

import (
	"github.com/gammazero/deque"
)

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures every claim, collision, completion and orphan end.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
	// MaxRecords bounds retention; once full, the oldest record is dropped.
	// 0 keeps everything.
	MaxRecords int
}

// SimulationTrace collects decision records during a simulation run.
type SimulationTrace struct {
	Config  TraceConfig
	Dropped int // records evicted because of MaxRecords

	records deque.Deque[EventRecord]
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{Config: config}
}

// Enabled reports whether records should be collected. Safe on nil.
func (st *SimulationTrace) Enabled() bool {
	return st != nil && st.Config.Level == TraceLevelDecisions
}

// Record appends a decision record, evicting the oldest one when full.
func (st *SimulationTrace) Record(record EventRecord) {
	if !st.Enabled() {
		return
	}
	st.records.PushBack(record)
	if st.Config.MaxRecords > 0 && st.records.Len() > st.Config.MaxRecords {
		st.records.PopFront()
		st.Dropped++
	}
}

// Len returns the number of retained records.
func (st *SimulationTrace) Len() int {
	if st == nil {
		return 0
	}
	return st.records.Len()
}

// Records returns the retained records, oldest first.
func (st *SimulationTrace) Records() []EventRecord {
	if st == nil {
		return nil
	}
	out := make([]EventRecord, 0, st.records.Len())
	for i := 0; i < st.records.Len(); i++ {
		out = append(out, st.records.At(i))
	}
	return out
}

// Reset drops all retained records.
func (st *SimulationTrace) Reset() {
	if st == nil {
		return
	}
	st.records.Clear()
	st.Dropped = 0
}
