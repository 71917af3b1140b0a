// cmd/colloquium/main.go
//
// Entry point for the colloquium scaffolder. Asks for a base path, a project
// name and the part files, previews the tree and writes it on confirmation.

package main

import (
	"fmt"
	"os"

	"github.com/kingrea/colloquium/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
