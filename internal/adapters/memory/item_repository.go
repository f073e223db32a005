package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ameerhamza-malik/ItemManagement/internal/domain/shared"
	"github.com/ameerhamza-malik/ItemManagement/internal/ports/outbound"
)

// In-memory repositories mirror the Postgres adapters' semantics so the
// services can be exercised without a database. They favor clarity over
// performance.
type ItemRepository struct {
	mu     sync.RWMutex
	items  map[int64]shared.Item
	nextID int64
}

// NewItemRepository creates a new in-memory item repository
func NewItemRepository() *ItemRepository {
	return &ItemRepository{items: make(map[int64]shared.Item), nextID: 1}
}

// Create creates a new item, assigning its ID and creation time
func (r *ItemRepository) Create(_ context.Context, item *shared.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = r.nextID
	r.nextID++
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	r.items[item.ID] = *item
	return nil
}

// GetByID retrieves an item by ID
func (r *ItemRepository) GetByID(_ context.Context, id int64) (*shared.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if item, ok := r.items[id]; ok {
		return &item, nil
	}
	return nil, shared.ErrItemNotFound
}

// List retrieves one page of items plus the total count, matching the SQL
// adapter's ordering (created_at desc, id desc) and case-insensitive
// substring search
func (r *ItemRepository) List(_ context.Context, filter outbound.ListFilter) ([]*shared.Item, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]shared.Item, 0, len(r.items))
	for _, item := range r.items {
		if filter.Search != "" && !matchesSearch(item, filter.Search) {
			continue
		}
		if filter.OwnerID != nil {
			if item.OwnerID == nil || *item.OwnerID != *filter.OwnerID {
				continue
			}
		}
		matched = append(matched, item)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := len(matched)
	offset := (filter.Page - 1) * filter.PageSize
	if offset >= total {
		return []*shared.Item{}, total, nil
	}

	end := offset + filter.PageSize
	if end > total {
		end = total
	}

	page := make([]*shared.Item, 0, end-offset)
	for i := offset; i < end; i++ {
		item := matched[i]
		page = append(page, &item)
	}
	return page, total, nil
}

// Update persists new title and description for an item
func (r *ItemRepository) Update(_ context.Context, item *shared.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[item.ID]
	if !ok {
		return shared.ErrItemNotFound
	}

	existing.Title = item.Title
	existing.Description = item.Description
	r.items[item.ID] = existing
	return nil
}

// Delete deletes an item
func (r *ItemRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return shared.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func matchesSearch(item shared.Item, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(item.Title), needle) ||
		strings.Contains(strings.ToLower(item.Description), needle)
}
