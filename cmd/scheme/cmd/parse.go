package cmd

import (
	"fmt"

	"github.com/cwbudde/go-scheme/internal/parser"
	"github.com/cwbudde/go-scheme/internal/printer"
	"github.com/spf13/cobra"
)

var parseExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Scheme file or expression and print the resulting forms",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVarP(&parseExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func runParse(_ *cobra.Command, args []string) error {
	input, _, err := readSource(parseExpr, args)
	if err != nil {
		return err
	}

	p := parser.New(input)
	forms, err := p.ParseAll()
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	for _, form := range forms {
		fmt.Println(printer.ToScheme(form))
	}
	return nil
}
