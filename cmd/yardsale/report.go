package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"

	"github.com/mmynk/yardsale/internal/calculator"
	"github.com/mmynk/yardsale/internal/models"
	"github.com/mmynk/yardsale/internal/state"
)

type reportCmd struct {
	seller string
	recent int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "print sales per seller and the grand total" }
func (*reportCmd) Usage() string {
	return `yardsale report [-seller <id>] [-recent <n>]

  Prints the total sales of every seller and the grand total, followed by
  the most recent sold items.
`
}

func (r *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.seller, "seller", "", "Only list sold items of this seller ID.")
	f.IntVar(&r.recent, "recent", 10, "Number of recent sold items to list (0 for none).")
}

func (r *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withContainer(ctx, func(c *state.Container) error {
		return writeReport(os.Stdout, c.Dataset(), r.seller, r.recent)
	})
}

func writeReport(w io.Writer, ds models.Dataset, sellerID string, recent int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	totals := calculator.SalesPerSeller(ds)

	fmt.Fprintln(tw, "Seller\tItems\tTotal\t")
	for _, t := range totals {
		fmt.Fprintf(tw, "%s\t%d\t%s\t\n", t.Name, t.Items, calculator.Format(t.Total))
	}
	fmt.Fprintf(tw, "Grand total\t\t%s\t\n", calculator.Format(calculator.GrandTotal(totals)))

	items := ds.RecentSoldItems(sellerID)
	if recent > 0 && len(items) > 0 {
		if len(items) > recent {
			items = items[:recent]
		}
		fmt.Fprintln(tw, "\t\t\t")
		for _, item := range items {
			when := time.UnixMilli(item.Timestamp).Format(time.DateTime)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", when, item.Name, ds.SellerName(item.SellerID), calculator.Format(item.Amount))
		}
	}
	return tw.Flush()
}
