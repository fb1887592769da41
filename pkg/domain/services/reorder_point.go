package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/reorder/pkg/domain/entities"
)

// ErrCoverageTooLong is returned when the next order date falls after MaxDate
var ErrCoverageTooLong = errors.New("days of coverage reach beyond the last representable date")

// ReorderPlan is the derived reorder data for an item at a given date
type ReorderPlan struct {
	MinimumStock     entities.Quantity
	OperationalStock entities.Quantity
	// DaysOfCoverage keeps its fractional part; NextOrderDate uses the truncated value
	DaysOfCoverage entities.Quantity
	NextOrderDate  entities.Date
	// OrderNow is set when on-hand stock is already below the minimum
	OrderNow bool
	// BeyondCalendar is set when the coverage runs past MaxDate; NextOrderDate is
	// then clamped to MaxDate
	BeyondCalendar bool
}

// ComputeReorderPlan derives minimum stock, days of coverage and the next order date.
//
// Fractional days of coverage are truncated when added to today, so 7.9 days of
// coverage yields an order date 7 days out.
func ComputeReorderPlan(
	quantity, dailyConsumption entities.Quantity,
	leadTimeDays int,
	today entities.Date,
) ReorderPlan {
	minimumStock := dailyConsumption.MulInt(leadTimeDays)
	operationalStock := quantity.Sub(minimumStock)

	daysOfCoverage := decimal.Zero
	if !dailyConsumption.Decimal().IsZero() {
		daysOfCoverage = operationalStock.Decimal().Div(dailyConsumption.Decimal())
	}

	plan := ReorderPlan{
		MinimumStock:     minimumStock,
		OperationalStock: operationalStock,
		DaysOfCoverage:   entities.NewQuantity(daysOfCoverage),
	}

	if daysOfCoverage.IsNegative() {
		plan.OrderNow = true
		plan.NextOrderDate = today
		return plan
	}

	maxDays := decimal.NewFromInt(int64(entities.MaxDate.DaysSince(today)))
	if daysOfCoverage.Truncate(0).GreaterThan(maxDays) {
		plan.BeyondCalendar = true
		plan.NextOrderDate = entities.MaxDate
		return plan
	}

	plan.NextOrderDate = today.AddDays(int(daysOfCoverage.IntPart()))
	return plan
}

// Recompute validates the details, applies them to the item and refreshes every
// derived field, stamping RegisteredOn with today. The item is left untouched
// when the next order date cannot be stored.
func Recompute(item *entities.Item, details entities.ItemDetails, today entities.Date) (ReorderPlan, error) {
	if err := details.Validate(); err != nil {
		return ReorderPlan{}, err
	}

	plan := ComputeReorderPlan(details.Quantity, details.DailyConsumption, details.LeadTimeDays, today)
	if plan.BeyondCalendar {
		return ReorderPlan{}, fmt.Errorf("%w: %s days from %s", ErrCoverageTooLong, plan.DaysOfCoverage.Round(0), today)
	}

	item.Name = details.Name
	item.Supplier = details.Supplier
	item.Unit = details.Unit
	item.Quantity = details.Quantity
	item.DailyConsumption = details.DailyConsumption
	item.LeadTimeDays = details.LeadTimeDays
	item.MinimumStock = plan.MinimumStock
	item.RegisteredOn = today
	item.NextOrderDate = plan.NextOrderDate
	item.LastReconciledOn = nil

	return plan, nil
}
