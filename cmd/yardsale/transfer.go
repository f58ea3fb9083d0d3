package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/mmynk/yardsale/internal/persist"
	"github.com/mmynk/yardsale/internal/state"
)

type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the dataset as JSON" }
func (*exportCmd) Usage() string {
	return `yardsale export [-out <file>]

  Writes sellers, quick items and sold items as pretty-printed JSON.
  Without -out the JSON goes to stdout.
`
}

func (e *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&e.out, "out", "", "Output file, e.g. "+persist.SuggestedName)
}

func (e *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withContainer(ctx, func(c *state.Container) error {
		_, err := gateway(e.out).Save(ctx, c.Dataset())
		return err
	})
}

type importCmd struct {
	in string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the dataset with JSON" }
func (*importCmd) Usage() string {
	return `yardsale import [-in <file>]

  Replaces all sellers, quick items and sold items with the content of an
  export. Without -in the JSON is read from stdin. The current data is left
  untouched when the input is rejected.
`
}

func (i *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&i.in, "in", "", "Input file, e.g. "+persist.SuggestedName)
}

func (i *importCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withContainer(ctx, func(c *state.Container) error {
		ds, _, err := gateway(i.in).Load(ctx)
		if err != nil {
			return err
		}
		if err := c.Replace(ctx, *ds); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Imported %d sellers, %d quick items, %d sold items\n",
			len(ds.Sellers), len(ds.QuickItems), len(ds.SoldItems))
		return nil
	})
}

// gateway tries the named file first and falls back to stdin/stdout.
func gateway(path string) *persist.Gateway {
	return persist.New(
		persist.FileTier{Picker: persist.FilePicker{Path: path}},
		persist.ModalTier{Modal: persist.StreamModal{In: os.Stdin, Out: os.Stdout}},
	)
}
