// Command scheme is the go-scheme CLI: a REPL and script runner built
// on top of pkg/scheme.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-scheme/cmd/scheme/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
