// Command guestimport converts the guest spreadsheet into the guests.json
// dataset read by the server.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"wedding-rsvp/internal/infra/guestimport"
	"wedding-rsvp/internal/infra/repository"
	"wedding-rsvp/internal/pkg/errs"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "guestimport",
		Usage: "build guests.json from an .xlsx or .csv guest list",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "spreadsheet to read (.xlsx or .csv)"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "data/guests.json", Usage: "dataset to write"},
			&cli.StringSliceFlag{Name: "sheet", Usage: "sheet to read; repeat for several (default: all)"},
			&cli.IntFlag{Name: "start-row", Value: 2, Usage: "first data row, 1-based"},
			&cli.StringSliceFlag{Name: "name-col", Value: cli.NewStringSlice("A"), Usage: "name column; repeat for side-by-side groups"},
			&cli.StringSliceFlag{Name: "plus-one-col", Value: cli.NewStringSlice("B"), Usage: "plus-one count column, one per group"},
			&cli.StringSliceFlag{Name: "pre-wedding-col", Value: cli.NewStringSlice("C"), Usage: "pre-wedding flag column (Y), one per group"},
			&cli.BoolFlag{Name: "dry-run", Usage: "print the summary without writing"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("guest import failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	layout, err := layoutFromFlags(c)
	if err != nil {
		return err
	}

	sheets, err := guestimport.LoadSheets(c.String("input"), c.StringSlice("sheet"))
	if err != nil {
		return err
	}

	rows := guestimport.Extract(sheets, layout)
	guests, err := guestimport.Build(rows)
	if err != nil {
		return err
	}

	plusOnes, preWedding := 0, 0
	for _, g := range guests {
		if g.PlusOneAllowed() {
			plusOnes++
		}
		if g.PreWeddingInvited() {
			preWedding++
		}
	}
	fmt.Fprintf(c.App.Writer, "%d rows, %d unique guests, %d with plus-one, %d invited to the pre-wedding event\n",
		len(rows), len(guests), plusOnes, preWedding)

	if c.Bool("dry-run") {
		return nil
	}

	output := c.String("output")
	if err := repository.NewGuestRepository(output).Save(c.Context, guests); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "wrote %s\n", output)
	return nil
}

// Column flags are zipped by position into groups.
func layoutFromFlags(c *cli.Context) (guestimport.Layout, error) {
	names := c.StringSlice("name-col")
	plusOnes := c.StringSlice("plus-one-col")
	preWeddings := c.StringSlice("pre-wedding-col")
	if len(plusOnes) != len(names) || len(preWeddings) != len(names) {
		return guestimport.Layout{}, errs.Newf(
			"column flags must pair up: %d name, %d plus-one, %d pre-wedding",
			len(names), len(plusOnes), len(preWeddings))
	}

	layout := guestimport.Layout{StartRow: c.Int("start-row")}
	for i := range names {
		group, err := guestimport.ParseColumnGroup(names[i], plusOnes[i], preWeddings[i])
		if err != nil {
			return guestimport.Layout{}, err
		}
		layout.Groups = append(layout.Groups, group)
	}
	return layout, nil
}
