// Package main provides the CLI entry point for placematch.
package main

import (
	"os"

	"github.com/gazetteerlabs/placematch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
