// Package main is the entry point for the vocab CLI.
package main

import (
	"os"

	"github.com/f3rmion/vocab/cmd/vocab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
