package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vsinha/reorder/pkg/application/dto"
	"github.com/vsinha/reorder/pkg/domain/entities"
	"github.com/vsinha/reorder/pkg/domain/repositories"
	domain "github.com/vsinha/reorder/pkg/domain/services"
)

// StockReconciler projects every item's stock forward to a date and reports
// which items need ordering
type StockReconciler struct {
	repo   repositories.ItemRepository
	logger *zap.Logger
}

// NewStockReconciler creates a new stock reconciler
func NewStockReconciler(repo repositories.ItemRepository, logger *zap.Logger) *StockReconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockReconciler{
		repo:   repo,
		logger: logger,
	}
}

// Reconcile decays each item's quantity by the consumption since its baseline and
// classifies its purchase status against today. When any quantity changed, the
// whole list is saved once after every item has been processed.
func (r *StockReconciler) Reconcile(ctx context.Context, today entities.Date) (*dto.ReconciliationReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items, err := r.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}

	report := &dto.ReconciliationReport{
		Date:  today,
		Lines: make([]dto.ReconciliationLine, 0, len(items)),
	}

	dirty := 0
	for i := range items {
		item := &items[i]
		previous := item.Quantity

		projection := domain.ProjectConsumption(item, today)
		domain.ApplyConsumption(item, projection, today)
		if projection.Changed {
			dirty++
		}

		status, daysRemaining := domain.ClassifyPurchase(item, today)

		report.Lines = append(report.Lines, dto.ReconciliationLine{
			Name:             item.Name,
			Supplier:         item.Supplier,
			Unit:             item.Unit,
			PreviousQuantity: previous,
			Quantity:         item.Quantity,
			DailyConsumption: item.DailyConsumption,
			MinimumStock:     item.MinimumStock,
			RegisteredOn:     item.RegisteredOn,
			NextOrderDate:    item.NextOrderDate,
			DaysElapsed:      projection.DaysElapsed,
			Status:           status,
			DaysRemaining:    daysRemaining,
			Changed:          projection.Changed,
		})

		r.logger.Debug("item reconciled",
			zap.String("name", item.Name),
			zap.Int("days_elapsed", projection.DaysElapsed),
			zap.String("quantity", item.Quantity.String()),
			zap.Stringer("status", status),
		)
	}

	if dirty > 0 {
		if err := r.repo.Save(items); err != nil {
			return nil, fmt.Errorf("failed to save reconciled items: %w", err)
		}
		report.Saved = true
		r.logger.Info("stock reconciled",
			zap.String("date", today.String()),
			zap.Int("items", len(items)),
			zap.Int("changed", dirty),
		)
	}

	return report, nil
}
