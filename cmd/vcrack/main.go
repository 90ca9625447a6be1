package main

import (
	"os"

	"vcrack/cmd/vcrack/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
