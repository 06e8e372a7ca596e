package cmd

import (
	"fmt"

	"github.com/cwbudde/go-scheme/internal/lexer"
	"github.com/cwbudde/go-scheme/internal/token"
	"github.com/spf13/cobra"
)

var (
	tokenizeExpr    string
	tokenizeShowPos bool
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Tokenize a Scheme file or expression",
	Long: `Tokenize a Scheme program and print the resulting tokens, for
debugging the lexer.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	tokenizeCmd.Flags().StringVarP(&tokenizeExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	tokenizeCmd.Flags().BoolVar(&tokenizeShowPos, "show-pos", false, "show token positions (line:column)")
}

func runTokenize(_ *cobra.Command, args []string) error {
	input, _, err := readSource(tokenizeExpr, args)
	if err != nil {
		return err
	}

	for _, tok := range lexer.Tokenize(input) {
		printToken(tok, tokenizeShowPos)
		if tok.Type == token.EOF {
			break
		}
	}
	return nil
}

func printToken(tok token.Token, showPos bool) {
	out := fmt.Sprintf("[%-16s]", tok.Type)
	if tok.Literal == "" {
		out += fmt.Sprintf(" %s", tok.Type)
	} else {
		out += fmt.Sprintf(" %q", tok.Literal)
	}
	if showPos {
		out += fmt.Sprintf(" @%s", tok.Pos)
	}
	fmt.Println(out)
}
