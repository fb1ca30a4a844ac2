package main

import (
	"os"

	"github.com/cparselex/cparselex/cmd/cparselex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
