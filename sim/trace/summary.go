package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalRecords        int
	Claims              int
	Collisions          int
	Completions         int
	OrphanEnds          int
	Dropped             int
	CollisionsByMachine map[string]int // machine name → start collisions
	LastTick            int            // tick of the newest retained record, -1 if none
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		CollisionsByMachine: make(map[string]int),
		LastTick:            -1,
	}
	if st == nil {
		return summary
	}

	records := st.Records()
	summary.TotalRecords = len(records)
	summary.Dropped = st.Dropped
	for _, r := range records {
		switch r.Kind {
		case EventClaim:
			summary.Claims++
		case EventCollision:
			summary.Collisions++
			summary.CollisionsByMachine[r.Machine]++
		case EventCompletion:
			summary.Completions++
		case EventOrphanEnd:
			summary.OrphanEnds++
		}
		if r.Tick > summary.LastTick {
			summary.LastTick = r.Tick
		}
	}
	return summary
}
