// Package main is the entry point for the bddconv CLI.
package main

import (
	"os"

	"github.com/bddtools/bddconv/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
