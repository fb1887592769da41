package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vsinha/reorder/pkg/application/services"
	"github.com/vsinha/reorder/pkg/domain/entities"
	"github.com/vsinha/reorder/pkg/infrastructure/repositories/jsonfile"
)

const storedFlour = `[
    {
        "name": "Flour",
        "supplier": "Mill Co",
        "unit": "sack",
        "quantity": 100,
        "dailyConsumption": 10,
        "leadTimeDays": 3,
        "minimumStock": 30,
        "registeredOn": "01/06/2024",
        "nextOrderDate": "08/06/2024"
    }
]`

func writeStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stock.json")
	if err := os.WriteFile(path, []byte(storedFlour), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommand_Check(t *testing.T) {
	data := writeStore(t)
	var out, errOut bytes.Buffer

	cmd := NewRootCommand(strings.NewReader(""), &out, &errOut, services.FixedClock(menuToday))
	cmd.SetArgs([]string{"check", "--data", data, "--format", "csv", "--as-of", "05/06/2024"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("check failed: %v\n%s", err, errOut.String())
	}

	assertContains(t, out.String(), "Flour,Mill Co,sack,60,10,30,01/06/2024,08/06/2024,PENDING,3,true")

	items, err := jsonfile.NewItemStore(data).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !items[0].Quantity.Equal(entities.QuantityFromInt(60)) {
		t.Errorf("Expected saved quantity 60, got %s", items[0].Quantity)
	}
}

func TestRootCommand_CheckUsesClock(t *testing.T) {
	data := writeStore(t)
	var out bytes.Buffer

	cmd := NewRootCommand(strings.NewReader(""), &out, &bytes.Buffer{}, services.FixedClock(menuToday))
	cmd.SetArgs([]string{"check", "--data", data})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("check failed: %v", err)
	}

	assertContains(t, out.String(), "Current stock: 10 sacks", "The day to place the order for this item has arrived.")
}

func TestRootCommand_CheckRejectsBadFlags(t *testing.T) {
	data := writeStore(t)

	for _, args := range [][]string{
		{"check", "--data", data, "--format", "xml"},
		{"check", "--data", data, "--as-of", "not a date"},
	} {
		cmd := NewRootCommand(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, nil)
		cmd.SetArgs(args)
		if err := cmd.Execute(); err == nil {
			t.Errorf("Expected error for %v", args)
		}
	}

	items, _ := jsonfile.NewItemStore(data).Load()
	if !items[0].Quantity.Equal(entities.QuantityFromInt(100)) {
		t.Errorf("Expected store untouched after rejected flags, got %s", items[0].Quantity)
	}
}

func TestRootCommand_InteractiveMenu(t *testing.T) {
	data := filepath.Join(t.TempDir(), "stock.json")
	var out bytes.Buffer

	cmd := NewRootCommand(
		strings.NewReader("1\n1\nMilk\nDairy Farm\nl\n4,5\n1,5\n2\n4\n3\n"),
		&out,
		&bytes.Buffer{},
		services.FixedClock(menuToday),
	)
	cmd.SetArgs([]string{"--data", data})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("menu failed: %v", err)
	}

	assertContains(t, out.String(), "==== STOCK CONTROL ====", "The next order must be placed on: 11/06/2024")

	items, err := jsonfile.NewItemStore(data).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(items) != 1 || items[0].Unit != entities.UnitLiter {
		t.Fatalf("Expected one liter item, got %+v", items)
	}
	if !items[0].MinimumStock.Equal(entities.QuantityFromInt(3)) {
		t.Errorf("Expected minimum stock 3, got %s", items[0].MinimumStock)
	}
}

func TestParseAsOf(t *testing.T) {
	want := entities.NewDate(2024, time.June, 5)
	for _, input := range []string{"05/06/2024", "2024-06-05"} {
		got, err := parseAsOf(input)
		if err != nil {
			t.Fatalf("parseAsOf(%q) failed: %v", input, err)
		}
		if !got.Equal(want) {
			t.Errorf("parseAsOf(%q) = %s, want %s", input, got, want)
		}
	}
	if _, err := parseAsOf("someday"); err == nil {
		t.Error("Expected error for unparseable date")
	}
}
