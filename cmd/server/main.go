package main // Entry point package

import (
	"os"

	"github.com/iliyamo/venue-booking/cmd/server/commands"
)

func main() {
	// Errors are printed by the commands themselves.
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
