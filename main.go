package main

import (
	"fmt"
	"os"
	"strings"

	"gridsheet/contracts"

	"github.com/spf13/cobra"
)

var flagCells []string

var rootCmd = &cobra.Command{
	Use:           "gridsheet",
	Short:         "Spreadsheet formula engine with an HTTP edit surface",
	SilenceErrors: true,
	SilenceUsage:  true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the grid API on " + ListenPort,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunApp()
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval <formula>",
	Short: "Evaluate one formula against --cell values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codec := NewRefCodec()

		values := make(map[contracts.CellRef]string, len(flagCells))
		for _, assignment := range flagCells {
			label, value, found := strings.Cut(assignment, "=")
			if !found {
				return fmt.Errorf("--cell wants LABEL=VALUE, got %q", assignment)
			}

			row, col, err := codec.Decode(label)
			if err != nil {
				return err
			}
			values[contracts.CellRef{Row: row, Col: col}] = value
		}

		evaluator := NewFormulaEvaluator(codec)
		result, err := evaluator.Evaluate(
			strings.TrimPrefix(args[0], contracts.FormulaMarker),
			NewMapValueSource(values),
		)
		if err != nil {
			return err
		}

		cmd.Println(result)
		return nil
	},
}

func init() {
	evalCmd.Flags().StringArrayVar(&flagCells, "cell", nil, "cell value as LABEL=VALUE (repeatable)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(evalCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(HandleExitError(os.Stderr, err))
	}
}
