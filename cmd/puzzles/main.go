package main

import (
	"os"

	"github.com/katalvlaran/statespace/internal/cli"
	"github.com/katalvlaran/statespace/internal/logging"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Error("command failed", "error", err)
		os.Exit(1)
	}
}
