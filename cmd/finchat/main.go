package main

import (
	"os"

	"github.com/finchat-dev/finchat/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
