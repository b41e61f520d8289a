package main

import (
	"os"

	"github.com/abhisek/mathdrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
