// Package sim provides the discrete-time simulation engine that evaluates a
// candidate job-shop schedule.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - action.go: Action lifecycle (pending → running → completed) and state machine
//   - job.go: Job/Operation precedence chain and the active-action rule
//   - simulator.go: the tick loop and the start/end transitions
//
// # Architecture
//
// A WorkUnit owns machines and jobs; jobs own operations, operations own their
// candidate actions (one per machine). Back-references are arena handles
// (MachineID, OperationID, ActionID). The flat action list is an index rebuilt
// on Load and defines scan order.
//
// Sub-packages:
//   - sim/table/: problem table loading (CSV, YAML problem spec) and validation
//   - sim/trace/: per-tick decision trace recording
//
// # Evaluation cycle
//
//	wu := sim.NewWorkUnit(tbl)
//	if err := wu.Load(); err != nil {
//		return err
//	}
//	rng := sim.NewSimulationKey(seed).StartTimeRNG()
//	if err := wu.AdjustRandomTimes(rng, 0, 20); err != nil {
//		return err
//	}
//	problems := wu.Simulate(limit)
//	metrics := sim.CollectMetrics(wu, problems, limit)
//
// Simulate is destructive; call Reset (or Load) before simulating the same
// WorkUnit again from scratch.
package sim
