package sim

// Job is an ordered chain of operations. Order is declaration order in the
// problem table and defines precedence.
type Job struct {
	ID         JobID
	Name       string
	Operations []*Operation
}

// IsDone reports whether every operation of the job has completed.
func (j *Job) IsDone() bool {
	for _, op := range j.Operations {
		if !op.IsDone() {
			return false
		}
	}
	return true
}

func (j Job) String() string {
	return j.Name
}

// Operation is one step of a job. It owns its candidate actions, one per
// machine, in machine order.
type Operation struct {
	ID       OperationID
	Name     string
	Job      JobID
	Previous OperationID // NoOperation for the first operation of a job
	Actions  []*Action
}

// IsDone reports whether any candidate action has completed. The engine
// completes at most one action per operation: once one completes, the
// remaining candidates are skipped.
func (o *Operation) IsDone() bool {
	for _, a := range o.Actions {
		if a.IsDone() {
			return true
		}
	}
	return false
}

// ActiveAction returns the candidate that actually ran: the completed action if
// there is one, otherwise the first candidate still holding its machine.
// Candidates are scanned in machine order, the same order the engine uses, so
// the first eligible candidate wins ties.
func (o *Operation) ActiveAction() *Action {
	var running *Action
	for _, a := range o.Actions {
		switch a.State {
		case ActionCompleted:
			return a
		case ActionRunning:
			if running == nil {
				running = a
			}
		}
	}
	return running
}

func (o Operation) String() string {
	return o.Name
}
