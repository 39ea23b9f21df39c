// Command water runs the water solver on its own.
package main

import (
	"os"

	"github.com/katalvlaran/statespace/internal/cli"
	"github.com/katalvlaran/statespace/internal/logging"
)

func main() {
	if err := cli.NewWaterCmd().Execute(); err != nil {
		logging.Error("command failed", "error", err)
		os.Exit(1)
	}
}
