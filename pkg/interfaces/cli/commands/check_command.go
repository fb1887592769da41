package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/vsinha/reorder/pkg/application/services"
	"github.com/vsinha/reorder/pkg/domain/entities"
	"github.com/vsinha/reorder/pkg/interfaces/cli/output"
)

func newCheckCommand(app func() *application, out io.Writer, clock services.Clock) *cobra.Command {
	var format, asOf string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Reconcile stock once and print which items need ordering",
		Long: `Projects every item's stock to today (or --as-of) from its daily consumption,
saves the decayed quantities and prints the purchase status of each item.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case output.FormatText, output.FormatJSON, output.FormatCSV:
			default:
				return fmt.Errorf("unsupported output format: %s", format)
			}

			today := clock.Today()
			if asOf != "" {
				date, err := parseAsOf(asOf)
				if err != nil {
					return err
				}
				today = date
			}

			report, err := app().reconciler.Reconcile(cmd.Context(), today)
			if err != nil {
				return err
			}
			return output.Generate(out, report, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", output.FormatText, "output format: text, json, csv")
	cmd.Flags().StringVar(&asOf, "as-of", "", "reconcile as of this date (DD/MM/YYYY or any common format)")
	return cmd
}

// parseAsOf reads DD/MM/YYYY first so that ambiguous dates are not taken as
// month-first, then falls back to dateparse
func parseAsOf(s string) (entities.Date, error) {
	if date, err := entities.ParseDate(s); err == nil {
		return date, nil
	}
	t, err := dateparse.ParseIn(s, time.Local)
	if err != nil {
		return entities.Date{}, fmt.Errorf("invalid --as-of date %q: %w", s, err)
	}
	return entities.DateOf(t), nil
}
