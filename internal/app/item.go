package app

import (
	"context"
	"errors"
	"time"

	"github.com/ameerhamza-malik/ItemManagement/internal/domain/shared"
	"github.com/ameerhamza-malik/ItemManagement/internal/platform/metrics"
	"github.com/ameerhamza-malik/ItemManagement/internal/ports/inbound"
	"github.com/ameerhamza-malik/ItemManagement/internal/ports/outbound"
	"github.com/ameerhamza-malik/ItemManagement/internal/validation"

	"github.com/rs/zerolog"
)

// ItemService implements the item lifecycle use cases
type ItemService struct {
	itemRepo        outbound.ItemRepository
	audit           outbound.AuditRecorder
	metrics         *metrics.Metrics
	defaultPageSize int
	logger          zerolog.Logger
}

type ItemServiceParams struct {
	ItemRepo        outbound.ItemRepository
	Audit           outbound.AuditRecorder
	Metrics         *metrics.Metrics
	DefaultPageSize int
	Logger          zerolog.Logger
}

// NewItemService creates a new item service
func NewItemService(params ItemServiceParams) *ItemService {
	return &ItemService{
		itemRepo:        params.ItemRepo,
		audit:           params.Audit,
		metrics:         params.Metrics,
		defaultPageSize: params.DefaultPageSize,
		logger:          params.Logger.With().Str("component", "item_service").Logger(),
	}
}

// CreateItem validates the form and persists a new item owned by the caller
func (service *ItemService) CreateItem(ctx context.Context, req inbound.CreateItemRequest) (*shared.Item, error) {
	form := validation.ItemForm{Title: req.Title, Description: req.Description}
	if errs := form.Validate(); len(errs) > 0 {
		service.logger.Warn().Int("violations", len(errs)).Msg("Item creation rejected by validation")
		return nil, errs
	}

	item := &shared.Item{
		Title:       form.Title,
		Description: form.Description,
		OwnerID:     req.OwnerID,
	}

	if err := service.itemRepo.Create(ctx, item); err != nil {
		service.logger.Error().Err(err).Msg("Failed to create item")
		return nil, err
	}

	service.logger.Info().
		Int64("item_id", item.ID).
		Msg("Item created")

	if service.metrics != nil {
		service.metrics.ItemsCreated.Inc()
	}
	if service.audit != nil && req.OwnerID != nil {
		service.audit.Record(outbound.AuditEvent{
			ItemID:     item.ID,
			ActorID:    *req.OwnerID,
			Action:     shared.AuditActionCreate,
			OccurredAt: time.Now(),
		})
	}

	return item, nil
}

// GetItem retrieves a single item by ID
func (service *ItemService) GetItem(ctx context.Context, itemID int64) (*shared.Item, error) {
	item, err := service.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, shared.ErrItemNotFound) {
			return nil, shared.ErrItemNotFound
		}
		service.logger.Error().Err(err).Int64("item_id", itemID).Msg("Failed to get item")
		return nil, err
	}

	return item, nil
}

// ListItems retrieves one page of the filtered, ordered item sequence and
// derives the page count from the total
func (service *ItemService) ListItems(ctx context.Context, req inbound.ListItemsRequest) (*shared.ItemPage, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = service.defaultPageSize
	}

	items, total, err := service.itemRepo.List(ctx, outbound.ListFilter{
		Search:   req.Search,
		OwnerID:  req.OwnerID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		service.logger.Error().Err(err).Str("search", req.Search).Msg("Failed to list items")
		return nil, err
	}

	return &shared.ItemPage{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// UpdateItem validates the form and persists new title and description.
// The item's id, owner and creation time are immutable.
func (service *ItemService) UpdateItem(ctx context.Context, req inbound.UpdateItemRequest) (*shared.Item, error) {
	item, err := service.itemRepo.GetByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, shared.ErrItemNotFound) {
			return nil, shared.ErrItemNotFound
		}
		service.logger.Error().Err(err).Int64("item_id", req.ItemID).Msg("Failed to load item for update")
		return nil, err
	}

	form := validation.ItemForm{Title: req.Title, Description: req.Description}
	if errs := form.Validate(); len(errs) > 0 {
		service.logger.Warn().
			Int64("item_id", req.ItemID).
			Int("violations", len(errs)).
			Msg("Item update rejected by validation")
		return nil, errs
	}

	item.Title = form.Title
	item.Description = form.Description

	if err := service.itemRepo.Update(ctx, item); err != nil {
		service.logger.Error().Err(err).Int64("item_id", req.ItemID).Msg("Failed to update item")
		return nil, err
	}

	service.logger.Info().Int64("item_id", item.ID).Msg("Item updated")

	if service.metrics != nil {
		service.metrics.ItemsUpdated.Inc()
	}
	if service.audit != nil {
		service.audit.Record(outbound.AuditEvent{
			ItemID:     item.ID,
			ActorID:    req.ActorID,
			Action:     shared.AuditActionUpdate,
			OccurredAt: time.Now(),
		})
	}

	return item, nil
}

// DeleteItem removes an item by ID. Deletion is idempotent at this layer:
// deleting an absent ID is not an error.
func (service *ItemService) DeleteItem(ctx context.Context, itemID, actorID int64) error {
	err := service.itemRepo.Delete(ctx, itemID)
	if err != nil {
		if errors.Is(err, shared.ErrItemNotFound) {
			service.logger.Debug().Int64("item_id", itemID).Msg("Delete of absent item ignored")
			return nil
		}
		service.logger.Error().Err(err).Int64("item_id", itemID).Msg("Failed to delete item")
		return err
	}

	service.logger.Info().Int64("item_id", itemID).Msg("Item deleted")

	if service.metrics != nil {
		service.metrics.ItemsDeleted.Inc()
	}
	if service.audit != nil {
		service.audit.Record(outbound.AuditEvent{
			ItemID:     itemID,
			ActorID:    actorID,
			Action:     shared.AuditActionDelete,
			OccurredAt: time.Now(),
		})
	}

	return nil
}

// totalPages derives the page count: at least one page, even when empty
func totalPages(total, pageSize int) int {
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}
