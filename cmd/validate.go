package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/gamus-sim/gamus/sim"
	"github.com/gamus-sim/gamus/sim/table"
)

var validateProblemPath string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a problem file and print its size",
	Run: func(cmd *cobra.Command, args []string) {
		if err := validateProblem(validateProblemPath, os.Stdout); err != nil {
			logrus.Fatalf("Invalid problem: %v", err)
		}
	},
}

// validateProblem loads the problem into a WorkUnit and prints its dimensions.
func validateProblem(path string, out io.Writer) error {
	tbl, err := table.LoadFile(path)
	if err != nil {
		return err
	}
	wu := sim.NewWorkUnit(tbl)
	if err := wu.Load(); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s: %d machines, %d jobs, %d operations, %d actions\n",
		path, len(wu.Machines()), len(wu.Jobs()), len(wu.Operations()), len(wu.Actions()))
	return nil
}

func init() {
	validateCmd.Flags().StringVar(&validateProblemPath, "problem", "", "Path to problem table (.csv, .yaml or .yml)")
	_ = validateCmd.MarkFlagRequired("problem")

	rootCmd.AddCommand(validateCmd)
}
