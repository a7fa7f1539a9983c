package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mylangc/internal/codegen"
	"mylangc/internal/config"
	"mylangc/internal/optimizer"
)

var (
	outputFile     string
	outputDir      string
	entryPoint     string
	emitComments   bool
	disabledPasses []string
	configPath     string
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a MyLang file to NASM assembly",
	Long: `Compile runs the full pipeline - lexer, parser, semantic analyzer,
IR generator, IR optimizer, NASM generator - and writes the resulting
assembly to a .asm file.

Examples:
  # Compile a script, writing script.asm next to it
  mylangc compile script.ml

  # Compile with a custom output path
  mylangc compile script.ml -o build/out.asm

  # Disable one optimizer pass for debugging
  mylangc compile script.ml --disable-pass copy_propagation`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: <input>.asm)")
	compileCmd.Flags().StringVar(&outputDir, "output-dir", "", "directory generated .asm files are written to")
	compileCmd.Flags().StringVar(&entryPoint, "entry", "", "NASM entry label name (default: main)")
	compileCmd.Flags().BoolVar(&emitComments, "emit-comments", false, "emit explanatory NASM comments")
	compileCmd.Flags().StringSliceVar(&disabledPasses, "disable-pass", nil, "disable an optimizer pass by name (repeatable)")
	compileCmd.Flags().StringVar(&configPath, "config", ".mylangc.yaml", "project config file")
}

func runCompile(_ *cobra.Command, args []string) error {
	filename := args[0]

	opts, err := loadOptions()
	if err != nil {
		return err
	}

	prog, _, err := frontend(filename)
	if err != nil {
		return err
	}

	instrs := generateIR(prog, opts)
	gen := codegen.NewGenerator(
		codegen.WithEntryPoint(opts.EntryPoint),
		codegen.WithComments(opts.EmitComments),
	)
	asm := gen.GenerateInstructions(instrs)

	outFile := outputFile
	if outFile == "" {
		base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)) + ".asm"
		outFile = filepath.Join(opts.OutputDir, base)
	}

	if err := os.WriteFile(outFile, []byte(asm), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outFile, err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "wrote %s (%s)\n", outFile, gen.Summary())
	} else {
		fmt.Printf("%s -> %s\n", filename, outFile)
	}
	return nil
}

// loadOptions merges the project config file (if present) with the flags
// this invocation passed, flags taking precedence.
func loadOptions() (*config.CompileOptions, error) {
	var opts []config.Option
	fileOpts, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	opts = append(opts, fileOpts...)

	for _, name := range disabledPasses {
		opts = append(opts, config.WithDisabledPass(optimizer.Pass(name)))
	}
	if entryPoint != "" {
		opts = append(opts, config.WithEntryPoint(entryPoint))
	}
	if emitComments {
		opts = append(opts, config.WithEmitComments(true))
	}
	if outputDir != "" {
		opts = append(opts, config.WithOutputDir(outputDir))
	}

	return config.New(opts...), nil
}
