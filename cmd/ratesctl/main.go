// Package main is the entry point for the ratesctl CLI.
package main

import (
	"os"

	"ratesservice/cmd/ratesctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
