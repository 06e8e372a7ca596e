package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "scheme",
	Short: "An R5RS Scheme interpreter",
	Long: `scheme is a Go implementation of an R5RS Scheme interpreter:
an explicit-stack evaluator with proper tail calls and call/cc,
backed by a tagged-value data model and an arbitrary-precision
numeric tower.`,
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

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Int("max-frames", 0, "bound the evaluator's explicit frame stack (0 = unbounded)")
}
