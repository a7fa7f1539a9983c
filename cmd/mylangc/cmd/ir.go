package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mylangc/internal/ir"
)

var (
	irJSON       bool
	irNoOptimize bool
)

var irCmd = &cobra.Command{
	Use:   "ir [file]",
	Short: "Print the IR listing for a MyLang file",
	Long: `Stops the pipeline after IR generation and optimization and prints the
resulting instruction listing, one instruction per line.

Examples:
  # Print the optimized IR listing
  mylangc ir script.ml

  # Print it as JSON for external tooling
  mylangc ir script.ml --json

  # Skip the optimizer pipeline entirely
  mylangc ir script.ml --no-optimize`,
	Args: cobra.ExactArgs(1),
	RunE: runIR,
}

func init() {
	rootCmd.AddCommand(irCmd)

	irCmd.Flags().BoolVar(&irJSON, "json", false, "print the listing as JSON instead of text")
	irCmd.Flags().BoolVar(&irNoOptimize, "no-optimize", false, "skip the optimizer pipeline")
}

func runIR(_ *cobra.Command, args []string) error {
	filename := args[0]

	opts, err := loadOptions()
	if err != nil {
		return err
	}

	prog, _, err := frontend(filename)
	if err != nil {
		return err
	}

	var instrs []ir.Instruction
	if irNoOptimize {
		instrs = ir.NewGenerator().Generate(prog)
	} else {
		instrs = generateIR(prog, opts)
	}

	if irJSON {
		doc, err := ir.DumpJSON(instrs)
		if err != nil {
			return fmt.Errorf("dumping IR as JSON: %w", err)
		}
		fmt.Println(doc)
		return nil
	}

	printIR(os.Stdout, instrs)
	return nil
}
