package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-scheme/internal/parser"
	"github.com/cwbudde/go-scheme/internal/value"
	"github.com/cwbudde/go-scheme/pkg/scheme"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, _ []string) error {
	maxFrames, _ := cmd.Flags().GetInt("max-frames")
	opts := []scheme.Option{scheme.WithOutput(os.Stdout)}
	if maxFrames > 0 {
		opts = append(opts, scheme.WithMaxFrames(maxFrames))
	}
	interp, err := scheme.New(opts...)
	if err != nil {
		return fmt.Errorf("initializing interpreter: %w", err)
	}

	in := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("scheme> ")
		line, err := in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				fmt.Println()
				return nil
			}
			return err
		}

		p := parser.New(line)
		for {
			form, err := p.ParseOne()
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				break
			}
			if form == value.Eof {
				break
			}
			result, err := interp.Eval(form)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				break
			}
			if result != value.Void {
				fmt.Println(interp.Print(result))
			}
		}
	}
}
