package main

import (
	"os"

	"beregne/cmd/beregne/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
