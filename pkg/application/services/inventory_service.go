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

// InventoryService adds, edits and removes tracked items. Every operation reads
// the full list from the repository and writes it back in one piece.
type InventoryService struct {
	repo   repositories.ItemRepository
	logger *zap.Logger
	clock  Clock
}

// NewInventoryService creates a new inventory service. A nil clock uses the local date.
func NewInventoryService(
	repo repositories.ItemRepository,
	logger *zap.Logger,
	clock Clock,
) *InventoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InventoryService{
		repo:   repo,
		logger: logger,
		clock:  clock,
	}
}

// ListItems returns every tracked item in stored order
func (s *InventoryService) ListItems(ctx context.Context) ([]entities.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	return items, nil
}

// AddItem computes the derived fields for a new item, appends it and saves
func (s *InventoryService) AddItem(ctx context.Context, details entities.ItemDetails) (*dto.ItemResult, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	var item entities.Item
	plan, err := domain.Recompute(&item, details, s.clock.Today())
	if err != nil {
		return nil, fmt.Errorf("invalid item: %w", err)
	}

	items = append(items, item)
	if err := s.repo.Save(items); err != nil {
		return nil, fmt.Errorf("failed to save items: %w", err)
	}

	s.logger.Info("item added",
		zap.String("name", item.Name),
		zap.String("minimum_stock", item.MinimumStock.String()),
		zap.String("next_order_date", item.NextOrderDate.String()),
		zap.Bool("order_now", plan.OrderNow),
	)

	return &dto.ItemResult{
		Item:           item,
		Position:       len(items),
		OrderNow:       plan.OrderNow,
		DaysOfCoverage: plan.DaysOfCoverage,
	}, nil
}

// EditItem replaces every field of the item at the 1-based position, recomputes
// its derived fields from today and saves
func (s *InventoryService) EditItem(
	ctx context.Context,
	position int,
	details entities.ItemDetails,
) (*dto.ItemResult, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkPosition(position, len(items)); err != nil {
		return nil, err
	}

	item := &items[position-1]
	previousName := item.Name

	plan, err := domain.Recompute(item, details, s.clock.Today())
	if err != nil {
		return nil, fmt.Errorf("invalid item: %w", err)
	}

	if err := s.repo.Save(items); err != nil {
		return nil, fmt.Errorf("failed to save items: %w", err)
	}

	s.logger.Info("item edited",
		zap.Int("position", position),
		zap.String("previous_name", previousName),
		zap.String("name", item.Name),
		zap.String("next_order_date", item.NextOrderDate.String()),
	)

	return &dto.ItemResult{
		Item:           *item,
		Position:       position,
		OrderNow:       plan.OrderNow,
		DaysOfCoverage: plan.DaysOfCoverage,
	}, nil
}

// RemoveItem deletes the item at the 1-based position and saves
func (s *InventoryService) RemoveItem(ctx context.Context, position int) (entities.Item, error) {
	items, err := s.ListItems(ctx)
	if err != nil {
		return entities.Item{}, err
	}
	if err := checkPosition(position, len(items)); err != nil {
		return entities.Item{}, err
	}

	removed := items[position-1]
	items = append(items[:position-1], items[position:]...)

	if err := s.repo.Save(items); err != nil {
		return entities.Item{}, fmt.Errorf("failed to save items: %w", err)
	}

	s.logger.Info("item removed", zap.Int("position", position), zap.String("name", removed.Name))
	return removed, nil
}

func checkPosition(position, count int) error {
	if position < 1 || position > count {
		return fmt.Errorf("%w: position %d of %d", repositories.ErrItemNotFound, position, count)
	}
	return nil
}
