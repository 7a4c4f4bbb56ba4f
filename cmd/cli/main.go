// Command voicedash is the CLI entry point.
package main

import (
	"os"

	"voicedash/cmd/cli/cmd"
	"voicedash/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
