package services

import "github.com/vsinha/reorder/pkg/domain/entities"

// quantityPlaces is the precision reconciled quantities are rounded to
const quantityPlaces = 2

// ConsumptionProjection is the result of projecting an item's stock to a date
type ConsumptionProjection struct {
	DaysElapsed int
	Consumed    entities.Quantity
	NewQuantity entities.Quantity
	Changed     bool
}

// ProjectConsumption decays the item's quantity by the consumption expected since
// its decay baseline. A baseline in the future counts as zero elapsed days.
func ProjectConsumption(item *entities.Item, today entities.Date) ConsumptionProjection {
	daysElapsed := today.DaysSince(item.DecayBaseline())
	if daysElapsed < 0 {
		daysElapsed = 0
	}

	consumed := item.DailyConsumption.MulInt(daysElapsed)
	newQuantity := item.Quantity.Sub(consumed).ClampZero().Round(quantityPlaces)

	return ConsumptionProjection{
		DaysElapsed: daysElapsed,
		Consumed:    consumed,
		NewQuantity: newQuantity,
		Changed:     !newQuantity.Equal(item.Quantity),
	}
}

// ApplyConsumption updates the item with a projection. Only the quantity and the
// decay baseline move; RegisteredOn, MinimumStock and NextOrderDate are kept as
// they were at the last (re)computation.
func ApplyConsumption(item *entities.Item, projection ConsumptionProjection, today entities.Date) {
	if !projection.Changed {
		return
	}
	item.Quantity = projection.NewQuantity
	reconciledOn := today
	item.LastReconciledOn = &reconciledOn
}

// ClassifyPurchase compares the stored next order date against today. For pending
// items the second return value is the number of days left.
func ClassifyPurchase(item *entities.Item, today entities.Date) (entities.PurchaseStatus, int) {
	if !item.NextOrderDate.After(today) {
		if item.NextOrderDate.Before(item.RegisteredOn) {
			return entities.StatusOverdue, 0
		}
		return entities.StatusDueToday, 0
	}
	return entities.StatusPending, item.NextOrderDate.DaysSince(today)
}
