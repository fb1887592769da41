package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/vsinha/reorder/pkg/application/dto"
	"github.com/vsinha/reorder/pkg/domain/entities"
)

func sampleReport() *dto.ReconciliationReport {
	today := entities.NewDate(2024, time.June, 10)
	return &dto.ReconciliationReport{
		Date:  today,
		Saved: true,
		Lines: []dto.ReconciliationLine{
			{
				Name:             "Flour",
				Supplier:         "Mill Co",
				Unit:             entities.UnitSack,
				Quantity:         entities.QuantityFromInt(80),
				DailyConsumption: entities.QuantityFromInt(10),
				MinimumStock:     entities.QuantityFromInt(30),
				RegisteredOn:     today.AddDays(-2),
				NextOrderDate:    today.AddDays(5),
				Status:           entities.StatusPending,
				DaysRemaining:    5,
				Changed:          true,
			},
			{
				Name:             "Milk",
				Supplier:         "Dairy Farm",
				Unit:             entities.UnitLiter,
				Quantity:         entities.QuantityFromFloat(0.5),
				DailyConsumption: entities.QuantityFromInt(2),
				MinimumStock:     entities.QuantityFromInt(2),
				RegisteredOn:     today,
				NextOrderDate:    today.AddDays(-1),
				Status:           entities.StatusOverdue,
			},
		},
	}
}

func TestGenerate_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, sampleReport(), FormatText); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Item: Flour",
		"Current stock: 80 sacks",
		"Minimum stock: 30 sacks",
		"Registration date: 08/06/2024",
		"Next order date: 15/06/2024",
		"5 days left until a new order is due.",
		"Current stock: 0.5 liter\n",
		"Stock depleted. Buy immediately!",
		"Stock updated from daily consumption. Changes saved.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestGenerate_TextEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, &dto.ReconciliationReport{}, FormatText); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No items registered.") {
		t.Errorf("Expected empty-store message, got %q", buf.String())
	}
}

func TestGenerate_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, sampleReport(), FormatJSON); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"status": "PENDING"`, `"status": "OVERDUE"`, `"date": "10/06/2024"`, `"quantity": 80`} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected JSON to contain %q, got:\n%s", want, out)
		}
	}
}

func TestGenerate_CSV(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(&buf, sampleReport(), FormatCSV); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header and 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "name,supplier,unit,quantity") {
		t.Errorf("Unexpected header: %s", lines[0])
	}
	if lines[1] != "Flour,Mill Co,sack,80,10,30,08/06/2024,15/06/2024,PENDING,5,true" {
		t.Errorf("Unexpected first row: %s", lines[1])
	}
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	if err := Generate(&bytes.Buffer{}, sampleReport(), "xml"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}
