package entities

import (
	"testing"
	"time"
)

func validDetails() ItemDetails {
	return ItemDetails{
		Name:             "Flour",
		Supplier:         "Mill Co",
		Unit:             UnitSack,
		Quantity:         QuantityFromInt(100),
		DailyConsumption: QuantityFromInt(10),
		LeadTimeDays:     3,
	}
}

func TestItemDetails_Validation(t *testing.T) {
	if err := validDetails().Validate(); err != nil {
		t.Fatalf("Expected valid details to pass validation: %v", err)
	}

	testCases := []struct {
		name        string
		mutate      func(d *ItemDetails)
		expectError string
	}{
		{"empty name", func(d *ItemDetails) { d.Name = "  " }, "item name cannot be empty"},
		{"bad unit", func(d *ItemDetails) { d.Unit = "crate" }, `invalid unit "crate"`},
		{
			"negative quantity",
			func(d *ItemDetails) { d.Quantity = QuantityFromFloat(-0.5) },
			"quantity cannot be negative, got -0.5",
		},
		{
			"zero consumption",
			func(d *ItemDetails) { d.DailyConsumption = ZeroQuantity },
			"daily consumption must be positive, got 0",
		},
		{"zero lead time", func(d *ItemDetails) { d.LeadTimeDays = 0 }, "lead time must be positive, got 0"},
		{"negative lead time", func(d *ItemDetails) { d.LeadTimeDays = -2 }, "lead time must be positive, got -2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDetails()
			tc.mutate(&d)
			err := d.Validate()
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestItem_DecayBaseline(t *testing.T) {
	registered := NewDate(2024, time.March, 1)
	item := Item{RegisteredOn: registered}
	if !item.DecayBaseline().Equal(registered) {
		t.Errorf("Expected baseline %s, got %s", registered, item.DecayBaseline())
	}

	reconciled := registered.AddDays(4)
	item.LastReconciledOn = &reconciled
	if !item.DecayBaseline().Equal(reconciled) {
		t.Errorf("Expected baseline %s, got %s", reconciled, item.DecayBaseline())
	}

	stale := registered.AddDays(-1)
	item.LastReconciledOn = &stale
	if !item.DecayBaseline().Equal(registered) {
		t.Errorf("Expected stale reconciliation date to be ignored, got %s", item.DecayBaseline())
	}
}

func TestUnit_ParseAndLabel(t *testing.T) {
	testCases := []struct {
		input    string
		expected Unit
	}{
		{"sack", UnitSack},
		{" SACK ", UnitSack},
		{"kg", UnitKilogram},
		{"Kilogram", UnitKilogram},
		{"l", UnitLiter},
		{"litre", UnitLiter},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			unit, err := ParseUnit(tc.input)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if unit != tc.expected {
				t.Errorf("Expected %s, got %s", tc.expected, unit)
			}
		})
	}

	if _, err := ParseUnit("box"); err == nil {
		t.Error("Expected error for unknown unit")
	}

	if got := UnitSack.Label(QuantityFromInt(1)); got != "sack" {
		t.Errorf("Expected singular label for 1, got %s", got)
	}
	if got := UnitSack.Label(QuantityFromFloat(1.5)); got != "sacks" {
		t.Errorf("Expected plural label for 1.5, got %s", got)
	}
	if got := UnitLiter.Label(ZeroQuantity); got != "liter" {
		t.Errorf("Expected singular label for 0, got %s", got)
	}
}

func TestQuantity_ParseAndRound(t *testing.T) {
	q, err := ParseQuantity("12,345")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !q.Equal(QuantityFromFloat(12.345)) {
		t.Errorf("Expected comma to be read as decimal point, got %s", q)
	}
	if got := q.Round(2); !got.Equal(QuantityFromFloat(12.35)) {
		t.Errorf("Expected 12.35, got %s", got)
	}
	for _, input := range []string{"abc", "1e999999999", "2E3", "1,5e2"} {
		if _, err := ParseQuantity(input); err == nil {
			t.Errorf("Expected error for %q", input)
		}
	}
	if got := QuantityFromInt(-3).ClampZero(); !got.Equal(ZeroQuantity) {
		t.Errorf("Expected clamp to zero, got %s", got)
	}
}

func TestDate_ArithmeticAndJSON(t *testing.T) {
	d := NewDate(2024, time.February, 27)
	if got := d.AddDays(3).String(); got != "01/03/2024" {
		t.Errorf("Expected 01/03/2024, got %s", got)
	}
	if got := d.AddDays(3).DaysSince(d); got != 3 {
		t.Errorf("Expected 3 days, got %d", got)
	}

	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(data) != `"27/02/2024"` {
		t.Errorf("Expected quoted DD/MM/YYYY, got %s", data)
	}

	var parsed Date
	if err := parsed.UnmarshalJSON(data); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !parsed.Equal(d) {
		t.Errorf("Expected %s, got %s", d, parsed)
	}

	if err := parsed.UnmarshalJSON([]byte(`"2024-02-27"`)); err == nil {
		t.Error("Expected error for ISO date")
	}
}

func TestDate_DaysSinceLongGaps(t *testing.T) {
	start := NewDate(1700, time.January, 1)
	end := NewDate(2100, time.January, 1)

	// 400 Gregorian years hold exactly 146097 days
	if got := end.DaysSince(start); got != 146097 {
		t.Errorf("Expected 146097 days, got %d", got)
	}
	if got := start.DaysSince(end); got != -146097 {
		t.Errorf("Expected -146097 days, got %d", got)
	}
	if got := MaxDate.DaysSince(NewDate(9999, time.December, 1)); got != 30 {
		t.Errorf("Expected 30 days, got %d", got)
	}
}
