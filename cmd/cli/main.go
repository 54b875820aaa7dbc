// Package main is the entry point for the retrofit-calc CLI.
package main

import (
	"os"

	"retrofit-calc/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
