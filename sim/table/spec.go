package table

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProblemSpec is the YAML form of a problem table.
type ProblemSpec struct {
	Machines []string  `yaml:"machines"`
	Jobs     []JobSpec `yaml:"jobs"`
}

// JobSpec lists a job's operations in precedence order.
type JobSpec struct {
	Name       string          `yaml:"name"`
	Operations []OperationSpec `yaml:"operations"`
}

// OperationSpec gives one duration per machine, in ProblemSpec.Machines order.
type OperationSpec struct {
	Name      string `yaml:"name"`
	Durations []int  `yaml:"durations"`
}

// LoadProblemSpec reads a ProblemSpec from a YAML file.
// Unknown fields are rejected so that typos do not silently drop data.
func LoadProblemSpec(path string) (*ProblemSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading problem spec: %w", err)
	}
	return ParseProblemSpec(data)
}

// ParseProblemSpec decodes a ProblemSpec from YAML bytes with strict field checking.
func ParseProblemSpec(data []byte) (*ProblemSpec, error) {
	var spec ProblemSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing problem spec: %w", err)
	}
	return &spec, nil
}

// Table flattens the spec into the raw table layout. The result is validated.
// Every job needs a name and at least one operation, and adjacent jobs need
// distinct names, since the table layout could not tell them apart.
func (s *ProblemSpec) Table() (Table, error) {
	header := append([]string{"job", "operation"}, s.Machines...)
	t := Table{header}
	for n, job := range s.Jobs {
		switch {
		case strings.TrimSpace(job.Name) == "":
			return nil, &MalformedInputError{Row: len(t), Col: 0,
				Reason: fmt.Sprintf("job %d has a blank name", n)}
		case len(job.Operations) == 0:
			return nil, &MalformedInputError{Row: len(t), Col: 1,
				Reason: fmt.Sprintf("job %q has no operations", job.Name)}
		case n > 0 && strings.TrimSpace(s.Jobs[n-1].Name) == strings.TrimSpace(job.Name):
			return nil, &MalformedInputError{Row: len(t), Col: 0,
				Reason: fmt.Sprintf("job %q repeats the previous job's name", job.Name)}
		}
		for k, op := range job.Operations {
			if len(op.Durations) != len(s.Machines) {
				return nil, &MalformedInputError{Row: len(t), Col: FirstMachineColumn,
					Reason: fmt.Sprintf("job %q operation %q has %d durations for %d machines",
						job.Name, op.Name, len(op.Durations), len(s.Machines))}
			}
			jobCell := ""
			if k == 0 {
				jobCell = job.Name
			}
			row := []string{jobCell, op.Name}
			for _, d := range op.Durations {
				row = append(row, strconv.Itoa(d))
			}
			t = append(t, row)
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// FromTable groups a validated table back into a ProblemSpec.
func FromTable(t Table) (*ProblemSpec, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	spec := &ProblemSpec{Machines: t.MachineNames()}
	for i := range t.Rows() {
		if t.StartsJob(i) {
			spec.Jobs = append(spec.Jobs, JobSpec{Name: t.JobName(i)})
		}
		durations, err := t.Durations(i)
		if err != nil {
			return nil, err
		}
		job := &spec.Jobs[len(spec.Jobs)-1]
		job.Operations = append(job.Operations, OperationSpec{Name: t.OperationName(i), Durations: durations})
	}
	return spec, nil
}
