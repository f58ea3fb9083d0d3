// Command yardsale inspects and maintains a yard sale database from the
// shell: list sellers, add sellers, print the sales report and move the
// dataset in and out as JSON.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/mmynk/yardsale/pkg/logging"
)

var (
	dbPath   = flag.String("db", "./data/yardsale.db", "Path to the SQLite database")
	logLevel = flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range commands {
		commander.Register(c, "")
	}

	flag.Parse()
	logging.SetupWithLevel(logging.ParseLevel(*logLevel))
	os.Exit(int(commander.Execute(context.Background())))
}
