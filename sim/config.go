package sim

// StartTimeConfig bounds the uniform start-time draw of AdjustRandomTimes.
type StartTimeConfig struct {
	MinStart int // inclusive
	MaxStart int // inclusive, must be >= MinStart
}

// RunConfig groups the parameters of one evaluation run.
type RunConfig struct {
	Seed      int64 // seeds SimulationKey.StartTimeRNG
	Limit     int   // number of ticks simulated, [0, Limit)
	StartTime StartTimeConfig
	Starts    []int // explicit start times in flat action order; overrides StartTime when set
}
