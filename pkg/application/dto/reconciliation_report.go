package dto

import "github.com/vsinha/reorder/pkg/domain/entities"

// ReconciliationReport is the outcome of one stock reconciliation run
type ReconciliationReport struct {
	Date  entities.Date        `json:"date"`
	Lines []ReconciliationLine `json:"items"`
	// Saved is set when at least one quantity changed and the list was persisted
	Saved bool `json:"saved"`
}

// ReconciliationLine describes one item after reconciliation
type ReconciliationLine struct {
	Name             string                  `json:"name"`
	Supplier         string                  `json:"supplier"`
	Unit             entities.Unit           `json:"unit"`
	PreviousQuantity entities.Quantity       `json:"previousQuantity"`
	Quantity         entities.Quantity       `json:"quantity"`
	DailyConsumption entities.Quantity       `json:"dailyConsumption"`
	MinimumStock     entities.Quantity       `json:"minimumStock"`
	RegisteredOn     entities.Date           `json:"registeredOn"`
	NextOrderDate    entities.Date           `json:"nextOrderDate"`
	DaysElapsed      int                     `json:"daysElapsed"`
	Status           entities.PurchaseStatus `json:"status"`
	DaysRemaining    int                     `json:"daysRemaining"`
	Changed          bool                    `json:"changed"`
}

// ItemsToOrder counts lines that are due or overdue
func (r *ReconciliationReport) ItemsToOrder() int {
	count := 0
	for _, line := range r.Lines {
		if line.Status != entities.StatusPending {
			count++
		}
	}
	return count
}

// ItemResult is returned by add and edit operations
type ItemResult struct {
	Item     entities.Item
	Position int
	// OrderNow is set when the stock was already below the minimum
	OrderNow bool
	// DaysOfCoverage is the untruncated number of days until minimum stock
	DaysOfCoverage entities.Quantity
}
