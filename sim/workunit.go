package sim

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/gamus-sim/gamus/sim/table"
	"github.com/gamus-sim/gamus/sim/trace"
)

// WorkUnit owns a problem's machines and jobs (which own their operations,
// which own their actions) and runs the simulation over them.
//
// operations and actions are flat indices rebuilt from the ownership tree by
// Load; they are never mutated independently of it.
//
// A WorkUnit is not safe for concurrent use. Evaluate candidate schedules in
// parallel by loading one WorkUnit per goroutine.
type WorkUnit struct {
	data table.Table

	machines   []*Machine
	jobs       []*Job
	operations []*Operation
	actions    []*Action

	// Trace, when enabled, receives one record per engine decision.
	Trace *trace.SimulationTrace
}

// NewWorkUnit creates a WorkUnit over a problem table. Call Load before use.
func NewWorkUnit(data table.Table) *WorkUnit {
	return &WorkUnit{data: data}
}

// Load clears the WorkUnit and rebuilds the machine/job/operation/action graph
// from the table. Machines keep header order; each operation gets one action
// per machine with action index == machine index. Start times are zero.
func (wu *WorkUnit) Load() error {
	wu.machines = nil
	wu.jobs = nil
	wu.operations = nil
	wu.actions = nil

	if err := wu.data.Validate(); err != nil {
		return fmt.Errorf("loading work unit: %w", err)
	}

	for j, name := range wu.data.MachineNames() {
		wu.machines = append(wu.machines, newMachine(MachineID(j), name))
	}

	var job *Job
	for i := range wu.data.Rows() {
		if wu.data.StartsJob(i) {
			job = &Job{ID: JobID(len(wu.jobs)), Name: wu.data.JobName(i)}
			wu.jobs = append(wu.jobs, job)
		}
		durations, err := wu.data.Durations(i)
		if err != nil {
			return fmt.Errorf("loading work unit: %w", err)
		}

		previous := NoOperation
		if n := len(job.Operations); n > 0 {
			previous = job.Operations[n-1].ID
		}
		op := &Operation{
			ID:       OperationID(len(wu.operations)),
			Name:     wu.data.OperationName(i),
			Job:      job.ID,
			Previous: previous,
		}
		for m, d := range durations {
			op.Actions = append(op.Actions, &Action{
				Operation: op.ID,
				Machine:   MachineID(m),
				Duration:  d,
				End:       d,
				State:     ActionPending,
			})
		}
		job.Operations = append(job.Operations, op)
		wu.operations = append(wu.operations, op)
	}

	wu.rebuildIndex()
	logrus.Infof("Loaded %d machines, %d jobs, %d operations, %d actions",
		len(wu.machines), len(wu.jobs), len(wu.operations), len(wu.actions))
	return nil
}

// rebuildIndex regenerates the flat action list from the ownership tree.
// Order is job declaration order, then operation order, then machine order.
func (wu *WorkUnit) rebuildIndex() {
	wu.actions = wu.actions[:0]
	for _, job := range wu.jobs {
		for _, op := range job.Operations {
			for _, a := range op.Actions {
				a.ID = ActionID(len(wu.actions))
				wu.actions = append(wu.actions, a)
			}
		}
	}
}

// AdjustRandomTimes draws every action's start uniformly from [min, max]
// inclusive and sets end = start + duration. The range must hold at most
// math.MaxInt values.
func (wu *WorkUnit) AdjustRandomTimes(rng *rand.Rand, min, max int) error {
	if rng == nil {
		return errors.New("adjusting start times: nil random source")
	}
	if max < min {
		return fmt.Errorf("adjusting start times: max %d < min %d", max, min)
	}
	span := max - min + 1
	if span <= 0 {
		return fmt.Errorf("adjusting start times: range [%d, %d] is too wide", min, max)
	}
	for _, a := range wu.actions {
		a.SetStart(min + rng.Intn(span))
	}
	return nil
}

// SetStartTimes assigns externally chosen start times, one per action in flat
// order, and sets end = start + duration.
func (wu *WorkUnit) SetStartTimes(starts []int) error {
	if len(starts) != len(wu.actions) {
		return fmt.Errorf("setting start times: got %d starts for %d actions", len(starts), len(wu.actions))
	}
	for i, a := range wu.actions {
		a.SetStart(starts[i])
	}
	return nil
}

// StartTimes returns the current start time of every action in flat order.
func (wu *WorkUnit) StartTimes() []int {
	starts := make([]int, len(wu.actions))
	for i, a := range wu.actions {
		starts[i] = a.Start
	}
	return starts
}

// Reset returns every action to pending, frees every machine and clears the
// trace. Start times are kept, so the same candidate can be simulated again.
func (wu *WorkUnit) Reset() {
	for _, m := range wu.machines {
		m.reset()
	}
	for _, a := range wu.actions {
		a.State = ActionPending
	}
	wu.Trace.Reset()
}

// Machines returns the machines in header order.
func (wu *WorkUnit) Machines() []*Machine { return wu.machines }

// Jobs returns the jobs in declaration order.
func (wu *WorkUnit) Jobs() []*Job { return wu.jobs }

// Operations returns every operation in flat order.
func (wu *WorkUnit) Operations() []*Operation { return wu.operations }

// Actions returns the flat action list.
func (wu *WorkUnit) Actions() []*Action { return wu.actions }

func (wu *WorkUnit) Machine(id MachineID) *Machine { return wu.machines[id] }

func (wu *WorkUnit) Job(id JobID) *Job { return wu.jobs[id] }

func (wu *WorkUnit) Action(id ActionID) *Action { return wu.actions[id] }

// Operation returns the operation for id, or nil for NoOperation.
func (wu *WorkUnit) Operation(id OperationID) *Operation {
	if id == NoOperation {
		return nil
	}
	return wu.operations[id]
}
