package entities

import (
	"fmt"
	"strings"
)

// Item is a tracked raw material. MinimumStock and NextOrderDate are derived and
// are refreshed together with RegisteredOn whenever the item is (re)computed.
type Item struct {
	Name             string   `json:"name"`
	Supplier         string   `json:"supplier"`
	Unit             Unit     `json:"unit"`
	Quantity         Quantity `json:"quantity"`
	DailyConsumption Quantity `json:"dailyConsumption"`
	LeadTimeDays     int      `json:"leadTimeDays"`
	MinimumStock     Quantity `json:"minimumStock"`
	RegisteredOn     Date     `json:"registeredOn"`
	NextOrderDate    Date     `json:"nextOrderDate"`

	// LastReconciledOn is the decay baseline after a reconciliation changed the
	// quantity. Nil until the first such reconciliation after a (re)computation.
	LastReconciledOn *Date `json:"lastReconciledOn,omitempty"`
}

// ItemDetails holds the user-entered fields of an item
type ItemDetails struct {
	Name             string
	Supplier         string
	Unit             Unit
	Quantity         Quantity
	DailyConsumption Quantity
	LeadTimeDays     int
}

// Validate checks the invariants on user-entered fields
func (d ItemDetails) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("item name cannot be empty")
	}
	if !d.Unit.IsValid() {
		return fmt.Errorf("invalid unit %q", d.Unit)
	}
	if d.Quantity.IsNegative() {
		return fmt.Errorf("quantity cannot be negative, got %s", d.Quantity)
	}
	if !d.DailyConsumption.IsPositive() {
		return fmt.Errorf("daily consumption must be positive, got %s", d.DailyConsumption)
	}
	if d.LeadTimeDays <= 0 {
		return fmt.Errorf("lead time must be positive, got %d", d.LeadTimeDays)
	}
	return nil
}

// Details returns the user-entered fields of the item
func (i *Item) Details() ItemDetails {
	return ItemDetails{
		Name:             i.Name,
		Supplier:         i.Supplier,
		Unit:             i.Unit,
		Quantity:         i.Quantity,
		DailyConsumption: i.DailyConsumption,
		LeadTimeDays:     i.LeadTimeDays,
	}
}

// DecayBaseline is the date consumption is projected from
func (i *Item) DecayBaseline() Date {
	if i.LastReconciledOn != nil && i.LastReconciledOn.After(i.RegisteredOn) {
		return *i.LastReconciledOn
	}
	return i.RegisteredOn
}
