package app_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameerhamza-malik/ItemManagement/internal/adapters/memory"
	"github.com/ameerhamza-malik/ItemManagement/internal/app"
	"github.com/ameerhamza-malik/ItemManagement/internal/domain/shared"
	"github.com/ameerhamza-malik/ItemManagement/internal/ports/inbound"
	"github.com/ameerhamza-malik/ItemManagement/internal/validation"
)

func newItemService(t *testing.T) (*app.ItemService, *memory.ItemRepository, *memory.AuditRecorder) {
	t.Helper()
	repo := memory.NewItemRepository()
	recorder := memory.NewAuditRecorder()
	service := app.NewItemService(app.ItemServiceParams{
		ItemRepo:        repo,
		Audit:           recorder,
		DefaultPageSize: 6,
		Logger:          zerolog.Nop(),
	})
	return service, repo, recorder
}

func seedItems(t *testing.T, repo *memory.ItemRepository, n int) {
	t.Helper()
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= n; i++ {
		item := &shared.Item{
			Title:       fmt.Sprintf("Item %02d", i),
			Description: fmt.Sprintf("Description for item %02d", i),
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(context.Background(), item))
	}
}

func TestCreateItemRoundtrip(t *testing.T) {
	service, _, recorder := newItemService(t)
	ownerID := int64(7)

	created, err := service.CreateItem(context.Background(), inbound.CreateItemRequest{
		Title:       "  Alpha Widget  ",
		Description: "  A fine widget.  ",
		OwnerID:     &ownerID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alpha Widget", created.Title)
	assert.Equal(t, "A fine widget.", created.Description)
	assert.NotZero(t, created.ID)

	fetched, err := service.GetItem(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, fetched.Title)
	assert.Equal(t, created.Description, fetched.Description)

	events := recorder.Events()
	require.Len(t, events, 1)
	assert.Equal(t, shared.AuditActionCreate, events[0].Action)
	assert.Equal(t, created.ID, events[0].ItemID)
	assert.Equal(t, ownerID, events[0].ActorID)
}

func TestCreateItemRejectsBlankTitle(t *testing.T) {
	service, _, recorder := newItemService(t)

	_, err := service.CreateItem(context.Background(), inbound.CreateItemRequest{
		Title:       "   ",
		Description: "a description",
	})
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, "title", verrs[0].Field)
	assert.Equal(t, validation.CodeMissingField, verrs[0].Code)
	assert.Empty(t, recorder.Events())
}

func TestCreateItemRejectsSuspiciousInput(t *testing.T) {
	service, _, _ := newItemService(t)

	_, err := service.CreateItem(context.Background(), inbound.CreateItemRequest{
		Title:       "' OR '1'='1",
		Description: "harmless",
	})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 1)
	assert.Equal(t, validation.CodeSuspiciousInput, verrs[0].Code)
}

func TestGetItemNotFound(t *testing.T) {
	service, _, _ := newItemService(t)

	_, err := service.GetItem(context.Background(), 12345)
	assert.ErrorIs(t, err, shared.ErrItemNotFound)
}

func TestListItemsPagination(t *testing.T) {
	service, repo, _ := newItemService(t)
	seedItems(t, repo, 13)

	tests := []struct {
		page     int
		wantLen  int
		wantPage int
	}{
		{1, 6, 1},
		{2, 6, 2},
		{3, 1, 3},
		{4, 0, 4},
	}

	for _, tt := range tests {
		result, err := service.ListItems(context.Background(), inbound.ListItemsRequest{Page: tt.page})
		require.NoError(t, err)
		assert.Len(t, result.Items, tt.wantLen, "page %d", tt.page)
		assert.Equal(t, 13, result.Total)
		assert.Equal(t, tt.wantPage, result.Page)
		assert.Equal(t, 6, result.PageSize)
		assert.Equal(t, 3, result.TotalPages)
	}
}

func TestListItemsNewestFirst(t *testing.T) {
	service, repo, _ := newItemService(t)
	seedItems(t, repo, 13)

	result, err := service.ListItems(context.Background(), inbound.ListItemsRequest{Page: 1})
	require.NoError(t, err)
	require.Len(t, result.Items, 6)
	assert.Equal(t, "Item 13", result.Items[0].Title)
	assert.Equal(t, "Item 08", result.Items[5].Title)
}

func TestListItemsClampsPageAndDefaultsSize(t *testing.T) {
	service, repo, _ := newItemService(t)
	seedItems(t, repo, 3)

	result, err := service.ListItems(context.Background(), inbound.ListItemsRequest{Page: -4, PageSize: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 6, result.PageSize)
	assert.Len(t, result.Items, 3)
}

func TestListItemsEmptyStillHasOnePage(t *testing.T) {
	service, _, _ := newItemService(t)

	result, err := service.ListItems(context.Background(), inbound.ListItemsRequest{Page: 1})
	require.NoError(t, err)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 1, result.TotalPages)
}

func TestListItemsSearchMatchesTitleAndDescription(t *testing.T) {
	service, repo, _ := newItemService(t)

	fixtures := []shared.Item{
		{Title: "Alpha Widget", Description: "first"},
		{Title: "Beta Gadget", Description: "contains widget mention"},
		{Title: "Gamma Tool", Description: "nothing of note"},
	}
	for i := range fixtures {
		fixtures[i].CreatedAt = time.Date(2026, time.March, 1, 12, i, 0, 0, time.UTC)
		require.NoError(t, repo.Create(context.Background(), &fixtures[i]))
	}

	result, err := service.ListItems(context.Background(), inbound.ListItemsRequest{Search: "WIDGET"})
	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, 2, result.Total)

	titles := []string{result.Items[0].Title, result.Items[1].Title}
	assert.ElementsMatch(t, []string{"Alpha Widget", "Beta Gadget"}, titles)
}

func TestUpdateItemPreservesImmutableFields(t *testing.T) {
	service, repo, recorder := newItemService(t)
	ownerID := int64(3)
	created := time.Date(2026, time.January, 15, 9, 30, 0, 0, time.UTC)

	item := &shared.Item{Title: "Before", Description: "old text", OwnerID: &ownerID, CreatedAt: created}
	require.NoError(t, repo.Create(context.Background(), item))

	updated, err := service.UpdateItem(context.Background(), inbound.UpdateItemRequest{
		ItemID:      item.ID,
		Title:       "After",
		Description: "new text",
		ActorID:     ownerID,
	})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, "new text", updated.Description)
	assert.Equal(t, item.ID, updated.ID)
	require.NotNil(t, updated.OwnerID)
	assert.Equal(t, ownerID, *updated.OwnerID)
	assert.True(t, updated.CreatedAt.Equal(created))

	events := recorder.Events()
	require.Len(t, events, 1)
	assert.Equal(t, shared.AuditActionUpdate, events[0].Action)
}

func TestUpdateItemNotFound(t *testing.T) {
	service, _, _ := newItemService(t)

	_, err := service.UpdateItem(context.Background(), inbound.UpdateItemRequest{
		ItemID:      999,
		Title:       "whatever",
		Description: "whatever",
	})
	assert.ErrorIs(t, err, shared.ErrItemNotFound)
}

func TestUpdateItemRejectsInvalidForm(t *testing.T) {
	service, repo, _ := newItemService(t)

	item := &shared.Item{Title: "Keep me", Description: "unchanged"}
	require.NoError(t, repo.Create(context.Background(), item))

	_, err := service.UpdateItem(context.Background(), inbound.UpdateItemRequest{
		ItemID: item.ID,
		Title:  "",
	})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)

	fetched, err := service.GetItem(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keep me", fetched.Title)
}

func TestDeleteItemIsIdempotent(t *testing.T) {
	service, repo, recorder := newItemService(t)

	item := &shared.Item{Title: "Ephemeral", Description: "soon gone"}
	require.NoError(t, repo.Create(context.Background(), item))

	require.NoError(t, service.DeleteItem(context.Background(), item.ID, 1))
	_, err := service.GetItem(context.Background(), item.ID)
	assert.ErrorIs(t, err, shared.ErrItemNotFound)

	// Second delete of the same ID succeeds without a second audit event
	require.NoError(t, service.DeleteItem(context.Background(), item.ID, 1))

	events := recorder.Events()
	require.Len(t, events, 1)
	assert.Equal(t, shared.AuditActionDelete, events[0].Action)
	assert.Equal(t, item.ID, events[0].ItemID)
}
