package main

import (
	"os"

	"mathclash/cmd/mathclash/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
