// Package cmd implements mylangc's cobra command tree: compile, ir, and
// version.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mylangc",
	Short: "MyLang ahead-of-time compiler",
	Long: `mylangc compiles MyLang source to Win64 NASM assembly.

The pipeline runs lexer -> parser -> semantic analyzer -> IR generator ->
IR optimizer -> NASM generator, aborting on the first diagnostic from any
stage.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print the IR listing and pass-by-pass optimizer trace to stderr")
}
