// Command budget records expenses and prints spending reports from the terminal.
// It works directly on the same SQLite file the server uses.
package main

import (
	"os"
	"time"
)

func main() {
	if err := newRootCmd(time.Now).Execute(); err != nil {
		os.Exit(1)
	}
}
