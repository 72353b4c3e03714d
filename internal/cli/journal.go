package cli

import (
	"fmt"
	"starlight/internal/domains/journal/model"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

const (
	statusConfirmed = "confirmed"
	statusLocal     = "saved locally"
	statusQuick     = "quick"
)

func addJournal(topLevel *cobra.Command, opts *Options, load Loader) {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Read a visitor's booking journal.",
	}

	list := &cobra.Command{
		Use:   "list <visitor>",
		Short: "List every booking record of a visitor, oldest first.",
		Example: `
starlightctl journal list 6f1c2a9e-0d4b-4c84-9a55-3f1e2b7c8d90
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := load(cmd.Context(), *opts)
			if err != nil {
				return err
			}

			records, err := deps.Journal.All(cmd.Context(), args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			if len(records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("No bookings for %s", args[0]))

				return nil
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), recordTable(records))

			return nil
		},
	}

	latest := &cobra.Command{
		Use:   "latest <visitor>",
		Short: "Print the most recent booking record of a visitor as JSON.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := load(cmd.Context(), *opts)
			if err != nil {
				return err
			}

			record, ok, err := deps.Journal.MostRecent(cmd.Context(), args[0])
			if err != nil {
				return err //nolint:wrapcheck
			}

			if !ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("No bookings for %s", args[0]))

				return nil
			}

			body, err := record.MarshalJSON()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(body))

			return nil
		},
	}

	cmd.AddCommand(list, latest)
	topLevel.AddCommand(cmd)
}

func recordTable(records []model.Record) *uitable.Table {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Name"), bold.Sprint("Email"), bold.Sprint("When"), bold.Sprint("Status"))

	for i, record := range records {
		tbl.AddRow(i+1, record.Name(), record.Fields[model.FieldEmail], when(record), status(record))
	}

	tbl.RightAlign(0)

	return tbl
}

func when(record model.Record) string {
	switch {
	case record.SubmittedAt != "":
		return record.SubmittedAt
	case record.Created != "":
		return record.Created
	default:
		return record.SavedAt
	}
}

func status(record model.Record) string {
	switch {
	case record.Confirmed():
		return color.GreenString(statusConfirmed)
	case record.SavedAt != "":
		return color.YellowString(statusLocal)
	default:
		return statusQuick
	}
}
