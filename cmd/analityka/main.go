package main

import (
	"os"

	"github.com/tomasz450/analityka/cmd/analityka/commands"
)

// main is the entry point for the analityka CLI:
// go run ./cmd/analityka [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
