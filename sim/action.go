// Defines the Action struct: one candidate machine assignment of an operation,
// and the lifecycle state the engine moves it through.

package sim

import (
	"fmt"
)

// ActionState represents the lifecycle state of an action.
type ActionState string

const (
	ActionPending   ActionState = "pending"   // not holding its machine
	ActionRunning   ActionState = "running"   // claimed its machine at its start tick
	ActionCompleted ActionState = "completed" // reached its end tick while its machine was occupied
)

// Action is "operation O could run on machine M starting at Start for Duration".
// Owned by exactly one Operation; the machine is referenced by handle.
type Action struct {
	ID        ActionID
	Operation OperationID
	Machine   MachineID

	Start    int
	Duration int
	End      int

	State ActionState
}

// IsDone reports whether the action has completed. Completion is permanent
// until the owning WorkUnit is reset or reloaded.
func (a *Action) IsDone() bool {
	return a.State == ActionCompleted
}

// SetStart moves the action's window so that it begins at start.
func (a *Action) SetStart(start int) {
	a.Start = start
	a.End = start + a.Duration
}

// claim is the Pending → Running transition.
func (a *Action) claim() {
	a.State = ActionRunning
}

// complete is the (Pending|Running) → Completed transition.
func (a *Action) complete() {
	a.State = ActionCompleted
}

// String returns a human-readable string representation of an Action.
func (a Action) String() string {
	return fmt.Sprintf("Action: (ID: %d, Machine: %d, Start: %d, Duration: %d, End: %d, State: %s)",
		a.ID, a.Machine, a.Start, a.Duration, a.End, a.State)
}
