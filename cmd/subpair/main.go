package main

import (
	"os"

	"github.com/subpair/subpair/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
