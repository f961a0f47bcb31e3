package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionState_Values(t *testing.T) {
	assert.Equal(t, ActionState("pending"), ActionPending)
	assert.Equal(t, ActionState("running"), ActionRunning)
	assert.Equal(t, ActionState("completed"), ActionCompleted)
}

func TestAction_SetStart_DerivesEnd(t *testing.T) {
	a := &Action{Duration: 4}
	a.SetStart(6)
	assert.Equal(t, 6, a.Start)
	assert.Equal(t, 10, a.End)
}

func TestAction_Transitions(t *testing.T) {
	a := &Action{State: ActionPending}
	assert.False(t, a.IsDone())

	a.claim()
	assert.Equal(t, ActionRunning, a.State)
	assert.False(t, a.IsDone())

	a.complete()
	assert.True(t, a.IsDone())
}

func TestAction_String_ContainsState(t *testing.T) {
	a := Action{ID: 2, Machine: 1, Start: 0, Duration: 3, End: 3, State: ActionRunning}
	assert.Contains(t, a.String(), "running")
	assert.Contains(t, a.String(), "Duration: 3")
}

func TestOperation_ActiveAction(t *testing.T) {
	first := &Action{ID: 0, State: ActionPending}
	second := &Action{ID: 1, State: ActionRunning}
	third := &Action{ID: 2, State: ActionRunning}
	op := &Operation{Actions: []*Action{first, second, third}}

	// GIVEN two running candidates THEN the first in candidate order is active
	assert.Same(t, second, op.ActiveAction())
	assert.False(t, op.IsDone())

	// GIVEN a completed candidate THEN it wins over running ones
	third.complete()
	assert.Same(t, third, op.ActiveAction())
	assert.True(t, op.IsDone())
}

func TestOperation_ActiveAction_NoneWhenNothingRan(t *testing.T) {
	op := &Operation{Actions: []*Action{{State: ActionPending}}}
	assert.Nil(t, op.ActiveAction())
}

func TestJob_IsDone_RequiresEveryOperation(t *testing.T) {
	done := &Operation{Actions: []*Action{{State: ActionCompleted}}}
	pending := &Operation{Actions: []*Action{{State: ActionPending}}}

	assert.True(t, (&Job{Operations: []*Operation{done}}).IsDone())
	assert.False(t, (&Job{Operations: []*Operation{done, pending}}).IsDone())
}
