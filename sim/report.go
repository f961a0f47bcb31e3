package sim

import (
	"fmt"
	"strings"
)

// NumberOfUndoneOperations counts operations that have not completed.
func (wu *WorkUnit) NumberOfUndoneOperations() int {
	counter := 0
	for _, job := range wu.jobs {
		for _, op := range job.Operations {
			if !op.IsDone() {
				counter++
			}
		}
	}
	return counter
}

// TotalTimeUsed returns the makespan actually realised: the largest end tick
// among completed actions, 0 if none completed.
func (wu *WorkUnit) TotalTimeUsed() int {
	total := 0
	for _, a := range wu.actions {
		if !a.IsDone() {
			continue
		}
		if a.End > total {
			total = a.End
		}
	}
	return total
}

// Report lists every job, its operations, and each operation's active action:
//
//	J1
//		O1
//			M1 [0, 3) duration 3 completed
func (wu *WorkUnit) Report() string {
	var b strings.Builder
	for _, job := range wu.jobs {
		b.WriteString(job.String())
		b.WriteString("\n")
		for _, op := range job.Operations {
			b.WriteString("\t")
			b.WriteString(op.String())
			b.WriteString("\n")
			b.WriteString("\t\t")
			b.WriteString(wu.formatAction(op.ActiveAction()))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (wu *WorkUnit) formatAction(a *Action) string {
	if a == nil {
		return "none"
	}
	return fmt.Sprintf("%s [%d, %d) duration %d %s", wu.machines[a.Machine].Name, a.Start, a.End, a.Duration, a.State)
}
