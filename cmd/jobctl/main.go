package main

import (
	"os"

	"jobboard-portal/cmd/jobctl/commands"
	"jobboard-portal/pkg/logger"

	"github.com/pterm/pterm"
)

func main() {
	defer logger.Close()

	if err := commands.NewRootCmd().Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
