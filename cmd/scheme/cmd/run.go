package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-scheme/pkg/scheme"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Scheme file or expression",
	Long: `Execute a Scheme program from a file or inline expression.

Examples:
  # Run a script file
  scheme run script.scm

  # Evaluate an inline expression
  scheme run -e "(display (+ 1 2)) (newline)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func runScript(cmd *cobra.Command, args []string) error {
	input, _, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	maxFrames, _ := cmd.Flags().GetInt("max-frames")
	opts := []scheme.Option{scheme.WithOutput(os.Stdout)}
	if maxFrames > 0 {
		opts = append(opts, scheme.WithMaxFrames(maxFrames))
	}
	interp, err := scheme.New(opts...)
	if err != nil {
		return fmt.Errorf("initializing interpreter: %w", err)
	}

	if _, err := interp.LoadString(input); err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	return nil
}

// readSource resolves the input source from either the -e flag or a
// single file path argument, the pattern shared by run/tokenize/parse.
func readSource(expr string, args []string) (input, filename string, err error) {
	if expr != "" {
		return expr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}
