package main

import (
	"os"

	"github.com/coregx/coreparse/cmd/coreparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
