package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/vsinha/reorder/pkg/application/services"
	"github.com/vsinha/reorder/pkg/domain/entities"
	"github.com/vsinha/reorder/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/reorder/pkg/interfaces/cli/output"
)

func main() {
	ctx := context.Background()

	// Register a bakery's raw materials two weeks ago
	registeredOn := entities.Today().AddDays(-14)
	repo := memory.NewItemRepository()
	inventory := services.NewInventoryService(repo, zap.NewNop(), services.FixedClock(registeredOn))

	materials := []entities.ItemDetails{
		{
			Name:             "Wheat flour",
			Supplier:         "Mill Co",
			Unit:             entities.UnitSack,
			Quantity:         entities.QuantityFromInt(40),
			DailyConsumption: entities.QuantityFromFloat(1.5),
			LeadTimeDays:     5,
		},
		{
			Name:             "Butter",
			Supplier:         "Dairy Farm",
			Unit:             entities.UnitKilogram,
			Quantity:         entities.QuantityFromInt(12),
			DailyConsumption: entities.QuantityFromInt(2),
			LeadTimeDays:     3,
		},
		{
			Name:             "Milk",
			Supplier:         "Dairy Farm",
			Unit:             entities.UnitLiter,
			Quantity:         entities.QuantityFromInt(200),
			DailyConsumption: entities.QuantityFromInt(6),
			LeadTimeDays:     2,
		},
	}

	fmt.Printf("Registering %d materials on %s\n", len(materials), registeredOn)
	for _, details := range materials {
		result, err := inventory.AddItem(ctx, details)
		if err != nil {
			fmt.Printf("Failed to add %s: %v\n", details.Name, err)
			os.Exit(1)
		}
		fmt.Printf("  %-12s minimum %s, coverage %s days, order by %s\n",
			result.Item.Name,
			result.Item.MinimumStock,
			result.DaysOfCoverage.Round(1),
			result.Item.NextOrderDate)
	}

	// Reconcile against today: two weeks of consumption are deducted
	report, err := services.NewStockReconciler(repo, zap.NewNop()).Reconcile(ctx, entities.Today())
	if err != nil {
		fmt.Printf("Reconciliation failed: %v\n", err)
		os.Exit(1)
	}

	if err := output.Generate(os.Stdout, report, output.FormatText); err != nil {
		fmt.Printf("Failed to print report: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\n%d of %d materials need ordering\n", report.ItemsToOrder(), len(report.Lines))
}
