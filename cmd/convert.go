package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gamus-sim/gamus/sim/table"
)

var (
	convertProblemPath string
	convertTo          string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a problem between CSV table and YAML spec",
	Long:  "Load a problem (.csv, .yaml or .yml) and write it in the requested format to stdout for piping.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := convertProblem(convertProblemPath, convertTo, os.Stdout); err != nil {
			logrus.Fatalf("Conversion failed: %v", err)
		}
	},
}

// convertProblem writes the problem at path to out as "csv" or "yaml".
func convertProblem(path, to string, out io.Writer) error {
	tbl, err := table.LoadFile(path)
	if err != nil {
		return err
	}
	switch to {
	case "csv":
		return table.WriteCSV(out, tbl)
	case "yaml":
		spec, err := table.FromTable(tbl)
		if err != nil {
			return err
		}
		return writeSpec(out, spec)
	default:
		return fmt.Errorf("unknown output format %q (want csv or yaml)", to)
	}
}

// writeSpec marshals a ProblemSpec to YAML.
func writeSpec(out io.Writer, spec *table.ProblemSpec) error {
	data, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("YAML marshal failed: %w", err)
	}
	_, err = out.Write(data)
	return err
}

func init() {
	convertCmd.Flags().StringVar(&convertProblemPath, "problem", "", "Path to problem table (.csv, .yaml or .yml)")
	convertCmd.Flags().StringVar(&convertTo, "to", "yaml", "Output format (csv, yaml)")
	_ = convertCmd.MarkFlagRequired("problem")

	rootCmd.AddCommand(convertCmd)
}
