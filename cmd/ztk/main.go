package main

import (
	"os"

	"github.com/msto63/ztk/cmd/ztk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
