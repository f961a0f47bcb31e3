package sim

import (
	"errors"
	"fmt"
)

// MachineID, JobID, OperationID and ActionID are indices into a WorkUnit's
// arenas. Entities refer to each other through these handles instead of
// pointers, so back-references never form ownership cycles.
type (
	MachineID   int
	JobID       int
	OperationID int
	ActionID    int
)

// Sentinel handles meaning "none".
const (
	NoMachine   MachineID   = -1
	NoOperation OperationID = -1
	NoAction    ActionID    = -1
)

var (
	// ErrMachineOccupied is returned by Machine.Occupy on a busy machine.
	ErrMachineOccupied = errors.New("machine already occupied")
	// ErrMachineIdle is returned by Machine.Release on a free machine.
	ErrMachineIdle = errors.New("machine not occupied")
)

// Machine is an exclusive resource. It tracks, but does not own, the action
// currently holding it. occupied is true iff current != NoAction.
type Machine struct {
	ID      MachineID
	Name    string
	current ActionID
}

func newMachine(id MachineID, name string) *Machine {
	return &Machine{ID: id, Name: name, current: NoAction}
}

// Occupy hands the machine to action a.
func (m *Machine) Occupy(a ActionID) error {
	if a == NoAction {
		return fmt.Errorf("machine %s: occupy with no action", m.Name)
	}
	if m.IsOccupied() {
		return fmt.Errorf("machine %s held by action %d: %w", m.Name, m.current, ErrMachineOccupied)
	}
	m.current = a
	return nil
}

// Release frees the machine regardless of which action holds it.
func (m *Machine) Release() error {
	if !m.IsOccupied() {
		return fmt.Errorf("machine %s: %w", m.Name, ErrMachineIdle)
	}
	m.current = NoAction
	return nil
}

func (m *Machine) IsOccupied() bool {
	return m.current != NoAction
}

// CurrentAction returns the action holding the machine, if any.
func (m *Machine) CurrentAction() (ActionID, bool) {
	return m.current, m.IsOccupied()
}

func (m *Machine) reset() {
	m.current = NoAction
}

func (m Machine) String() string {
	return m.Name
}
