package output

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	jsoniter "github.com/json-iterator/go"

	"github.com/vsinha/reorder/pkg/application/dto"
	"github.com/vsinha/reorder/pkg/domain/entities"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Generate writes the reconciliation report to w in the given format
func Generate(w io.Writer, report *dto.ReconciliationReport, format string) error {
	switch format {
	case FormatText:
		return generateTextOutput(w, report)
	case FormatJSON:
		return generateJSONOutput(w, report)
	case FormatCSV:
		return generateCSVOutput(w, report)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// StatusMessage describes what the user should do about a line's purchase status
func StatusMessage(line dto.ReconciliationLine) string {
	switch line.Status {
	case entities.StatusOverdue:
		return "Stock depleted. Buy immediately!"
	case entities.StatusDueToday:
		return "The day to place the order for this item has arrived."
	default:
		return fmt.Sprintf("%d days left until a new order is due.", line.DaysRemaining)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(w io.Writer, report *dto.ReconciliationReport) error {
	if len(report.Lines) == 0 {
		_, err := fmt.Fprintln(w, "\nNo items registered.")
		return err
	}

	fmt.Fprintln(w, "\n--- Stock check ---")
	for _, line := range report.Lines {
		unit := line.Unit.Label(line.Quantity)
		fmt.Fprintf(w, "\nItem: %s\n", line.Name)
		fmt.Fprintf(w, "Supplier: %s\n", line.Supplier)
		fmt.Fprintf(w, "Current stock: %s %s\n", line.Quantity, unit)
		fmt.Fprintf(w, "Daily consumption: %s %s\n", line.DailyConsumption, unit)
		fmt.Fprintf(w, "Minimum stock: %s %s\n", line.MinimumStock, unit)
		fmt.Fprintf(w, "Registration date: %s\n", line.RegisteredOn)
		fmt.Fprintf(w, "Next order date: %s\n", line.NextOrderDate)
		fmt.Fprintln(w, StatusMessage(line))
	}

	if report.Saved {
		fmt.Fprintln(w, "\nStock updated from daily consumption. Changes saved.")
	}
	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(w io.Writer, report *dto.ReconciliationReport) error {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(jsonData)); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

type csvRow struct {
	Name             string `csv:"name"`
	Supplier         string `csv:"supplier"`
	Unit             string `csv:"unit"`
	Quantity         string `csv:"quantity"`
	DailyConsumption string `csv:"daily_consumption"`
	MinimumStock     string `csv:"minimum_stock"`
	RegisteredOn     string `csv:"registered_on"`
	NextOrderDate    string `csv:"next_order_date"`
	Status           string `csv:"status"`
	DaysRemaining    int    `csv:"days_remaining"`
	Changed          bool   `csv:"changed"`
}

// generateCSVOutput creates CSV output, one row per item
func generateCSVOutput(w io.Writer, report *dto.ReconciliationReport) error {
	rows := make([]*csvRow, 0, len(report.Lines))
	for _, line := range report.Lines {
		rows = append(rows, &csvRow{
			Name:             line.Name,
			Supplier:         line.Supplier,
			Unit:             line.Unit.String(),
			Quantity:         line.Quantity.String(),
			DailyConsumption: line.DailyConsumption.String(),
			MinimumStock:     line.MinimumStock.String(),
			RegisteredOn:     line.RegisteredOn.String(),
			NextOrderDate:    line.NextOrderDate.String(),
			Status:           line.Status.String(),
			DaysRemaining:    line.DaysRemaining,
			Changed:          line.Changed,
		})
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
