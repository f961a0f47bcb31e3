// Aggregates the outcome of a simulation run for final reporting.

package sim

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Metrics summarizes one evaluated candidate schedule.
type Metrics struct {
	Problems
	Limit            int `json:"limit"`
	Machines         int `json:"machines"`
	Jobs             int `json:"jobs"`
	Operations       int `json:"operations"`
	Actions          int `json:"actions"`
	UndoneOperations int `json:"undone_operations"`
	CompletedJobs    int `json:"completed_jobs"`
	TotalTimeUsed    int `json:"total_time_used"`
	// MachineUsage is in machine header order.
	MachineUsage []MachineUsage `json:"machine_usage"`
}

// MachineUsage is the summed duration of the actions that completed on a machine.
type MachineUsage struct {
	Machine   string `json:"machine"`
	BusyTicks int    `json:"busy_ticks"`
}

// CollectMetrics reads the post-simulation state of wu.
func CollectMetrics(wu *WorkUnit, problems Problems, limit int) *Metrics {
	m := &Metrics{
		Problems:         problems,
		Limit:            limit,
		Machines:         len(wu.machines),
		Jobs:             len(wu.jobs),
		Operations:       len(wu.operations),
		Actions:          len(wu.actions),
		UndoneOperations: wu.NumberOfUndoneOperations(),
		TotalTimeUsed:    wu.TotalTimeUsed(),
		MachineUsage:     make([]MachineUsage, len(wu.machines)),
	}
	for _, job := range wu.jobs {
		if job.IsDone() {
			m.CompletedJobs++
		}
	}
	for i, machine := range wu.machines {
		m.MachineUsage[i].Machine = machine.Name
	}
	for _, a := range wu.actions {
		if a.IsDone() {
			m.MachineUsage[a.Machine].BusyTicks += a.Duration
		}
	}
	return m
}

// Feasible reports whether the run had no violations and finished every operation.
func (m *Metrics) Feasible() bool {
	return m.Total() == 0 && m.UndoneOperations == 0
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(w io.Writer) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Limit                : %d ticks\n", m.Limit)
	fmt.Fprintf(w, "Machines / Jobs      : %d / %d\n", m.Machines, m.Jobs)
	fmt.Fprintf(w, "Operations / Actions : %d / %d\n", m.Operations, m.Actions)
	fmt.Fprintf(w, "Start Collisions     : %d\n", m.StartCollisions)
	fmt.Fprintf(w, "Orphan Ends          : %d\n", m.OrphanEnds)
	fmt.Fprintf(w, "Undone Operations    : %d\n", m.UndoneOperations)
	fmt.Fprintf(w, "Completed Jobs       : %d\n", m.CompletedJobs)
	fmt.Fprintf(w, "Total Time Used      : %d ticks\n", m.TotalTimeUsed)
	if m.TotalTimeUsed > 0 {
		for _, u := range m.MachineUsage {
			fmt.Fprintf(w, "  %-18s : %d ticks (%.1f%%)\n", u.Machine, u.BusyTicks, 100*float64(u.BusyTicks)/float64(m.TotalTimeUsed))
		}
	}
}

// SaveResults writes the metrics as indented JSON to path.
func (m *Metrics) SaveResults(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling metrics: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing metrics file: %w", err)
	}
	logrus.Infof("Metrics written to %s", path)
	return nil
}
