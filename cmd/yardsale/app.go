package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mmynk/yardsale/internal/state"
	"github.com/mmynk/yardsale/internal/storage/sqlite"
)

var commands = []subcommands.Command{
	&sellersCmd{},
	&addSellerCmd{},
	&reportCmd{},
	&exportCmd{},
	&importCmd{},
}

// withContainer opens the database named by -db, runs fn and closes it.
func withContainer(ctx context.Context, fn func(*state.Container) error) subcommands.ExitStatus {
	store, err := sqlite.New(*dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	c, err := state.Open(ctx, store)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := fn(c); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
