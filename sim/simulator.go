// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gamus-sim/gamus/sim/trace"
)

// Problems counts constraint violations found by one simulation run.
type Problems struct {
	// StartCollisions counts start ticks at which the action's machine was
	// already held by another action.
	StartCollisions int `json:"start_collisions"`
	// OrphanEnds counts end ticks at which the action's machine was free,
	// i.e. the action never held it.
	OrphanEnds int `json:"orphan_ends"`
}

// Counters returns the problems in their historical array order:
// [start collisions, orphan ends].
func (p Problems) Counters() [2]int {
	return [2]int{p.StartCollisions, p.OrphanEnds}
}

// Total is the sum of both counters.
func (p Problems) Total() int {
	return p.StartCollisions + p.OrphanEnds
}

// StartOutcome is the result of the start check for one action at one tick.
type StartOutcome int

const (
	StartNone     StartOutcome = iota // not the action's start tick, or nothing to start
	StartClaimed                      // machine was free and is now held by the action
	StartCollided                     // machine was held by another action
)

// EndOutcome is the result of the end check for one action at one tick.
type EndOutcome int

const (
	EndNone      EndOutcome = iota // not the action's end tick
	EndCompleted                   // machine was occupied; action completed and machine released
	EndOrphaned                    // machine was free
)

// Simulate runs ticks [0, limit) and returns the violation counters. It always
// runs exactly limit ticks; finishing every operation early does not stop it.
//
// Simulate mutates action and machine state. Actions already completed are
// skipped, so simulating again without Reset only continues from the current
// state.
func (wu *WorkUnit) Simulate(limit int) Problems {
	var problems Problems
	for tick := 0; tick < limit; tick++ {
		wu.Step(tick, &problems)
	}
	logrus.Infof("[tick %07d] Simulation ended: %d start collisions, %d orphan ends",
		limit, problems.StartCollisions, problems.OrphanEnds)
	return problems
}

// Step evaluates a single tick, scanning the flat action list in order.
// Scan order decides which of two actions claims a machine first.
func (wu *WorkUnit) Step(tick int, problems *Problems) {
	for _, a := range wu.actions {
		if !wu.eligible(a) {
			continue
		}
		if wu.tryStart(a, tick) == StartCollided {
			problems.StartCollisions++
		}
		if wu.tryEnd(a, tick) == EndOrphaned {
			problems.OrphanEnds++
		}
	}
}

// eligible gates an action on its operation not being done yet and on its
// operation's predecessor being done. Both are re-read for every action, so a
// completion earlier in the same tick is already visible.
func (wu *WorkUnit) eligible(a *Action) bool {
	op := wu.operations[a.Operation]
	if op.IsDone() {
		return false
	}
	if prev := wu.Operation(op.Previous); prev != nil && !prev.IsDone() {
		return false
	}
	return true
}

// tryStart claims the action's machine at its start tick. Zero-duration
// actions never claim.
func (wu *WorkUnit) tryStart(a *Action, tick int) StartOutcome {
	if a.Start != tick || a.Duration <= 0 || a.IsDone() {
		return StartNone
	}
	m := wu.machines[a.Machine]
	if m.IsOccupied() {
		holder, _ := m.CurrentAction()
		logrus.Debugf("[tick %07d] %s collides on %s held by action %d", tick, wu.describe(a), m.Name, holder)
		wu.record(tick, trace.EventCollision, a, int(holder))
		return StartCollided
	}
	if err := m.Occupy(a.ID); err != nil {
		panic(fmt.Sprintf("tryStart: %v", err))
	}
	a.claim()
	logrus.Debugf("[tick %07d] %s claims %s", tick, wu.describe(a), m.Name)
	wu.record(tick, trace.EventClaim, a, -1)
	return StartClaimed
}

// tryEnd completes the action at its end tick if its machine is occupied, by
// this action or any other, and releases the machine. An action that never
// claimed can therefore complete and free a machine another action holds.
func (wu *WorkUnit) tryEnd(a *Action, tick int) EndOutcome {
	if a.End != tick {
		return EndNone
	}
	m := wu.machines[a.Machine]
	holder, occupied := m.CurrentAction()
	if !occupied {
		logrus.Debugf("[tick %07d] %s ends on idle %s", tick, wu.describe(a), m.Name)
		wu.record(tick, trace.EventOrphanEnd, a, -1)
		return EndOrphaned
	}
	a.complete()
	if err := m.Release(); err != nil {
		panic(fmt.Sprintf("tryEnd: %v", err))
	}
	logrus.Debugf("[tick %07d] %s completes, releasing %s", tick, wu.describe(a), m.Name)
	wu.record(tick, trace.EventCompletion, a, int(holder))
	return EndCompleted
}

func (wu *WorkUnit) record(tick int, kind trace.EventKind, a *Action, holder int) {
	if !wu.Trace.Enabled() {
		return
	}
	op := wu.operations[a.Operation]
	wu.Trace.Record(trace.EventRecord{
		Tick:      tick,
		Kind:      kind,
		ActionID:  int(a.ID),
		Job:       wu.jobs[op.Job].Name,
		Operation: op.Name,
		Machine:   wu.machines[a.Machine].Name,
		Holder:    holder,
	})
}

// describe names an action as job/operation@machine for log lines.
func (wu *WorkUnit) describe(a *Action) string {
	op := wu.operations[a.Operation]
	return fmt.Sprintf("%s/%s@%s", wu.jobs[op.Job].Name, op.Name, wu.machines[a.Machine].Name)
}
