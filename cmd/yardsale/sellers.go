package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/mmynk/yardsale/internal/models"
	"github.com/mmynk/yardsale/internal/service"
	"github.com/mmynk/yardsale/internal/state"
)

type sellersCmd struct{}

func (*sellersCmd) Name() string     { return "sellers" }
func (*sellersCmd) Synopsis() string { return "list the sellers" }
func (*sellersCmd) Usage() string {
	return `yardsale sellers

  Prints one seller per line: ID, name and number of sold items.
`
}
func (*sellersCmd) SetFlags(*flag.FlagSet) {}

func (*sellersCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withContainer(ctx, func(c *state.Container) error {
		return writeSellers(os.Stdout, c.Dataset())
	})
}

func writeSellers(w io.Writer, ds models.Dataset) error {
	for _, s := range ds.Sellers {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\n", s.ID, s.Name, ds.SoldItemsBySeller(s.ID)); err != nil {
			return err
		}
	}
	return nil
}

type addSellerCmd struct{}

func (*addSellerCmd) Name() string     { return "add-seller" }
func (*addSellerCmd) Synopsis() string { return "add a seller" }
func (*addSellerCmd) Usage() string {
	return `yardsale add-seller <name>

  Adds a seller and prints its ID. Words are joined with spaces.
`
}
func (*addSellerCmd) SetFlags(*flag.FlagSet) {}

func (c *addSellerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.Join(f.Args(), " ")
	if strings.TrimSpace(name) == "" {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	return withContainer(ctx, func(c *state.Container) error {
		seller, err := service.NewRegistry(c).AddSeller(ctx, name)
		if err != nil {
			return err
		}
		fmt.Println(seller.ID)
		return nil
	})
}
