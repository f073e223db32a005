package rest

import (
	"net/http"

	"github.com/ameerhamza-malik/ItemManagement/internal/ports/inbound"
	"github.com/ameerhamza-malik/ItemManagement/internal/validation"

	"github.com/rs/zerolog"
)

// Handler maps HTTP requests onto the item and auth services. It stays
// thin: parsing and response shaping only, no business rules.
type Handler struct {
	itemService inbound.ItemService
	authService inbound.AuthService
	logger      zerolog.Logger
}

type HandlerParams struct {
	ItemService inbound.ItemService
	AuthService inbound.AuthService
	Logger      zerolog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		itemService: params.ItemService,
		authService: params.AuthService,
		logger:      params.Logger.With().Str("component", "http_handler").Logger(),
	}
}

// Register handles user registration
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req inbound.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := handler.authService.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, handler.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login verifies credentials and sets the session cookie
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req inbound.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := handler.authService.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, handler.logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, session)
}

// Logout invalidates the current session and clears the cookie
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if err := handler.authService.Logout(r.Context(), cookie.Value); err != nil {
			writeServiceError(w, handler.logger, err)
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

// ListItems returns one page of items with search applied
func (handler *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	page, err := handler.itemService.ListItems(r.Context(), inbound.ListItemsRequest{
		Search:   r.URL.Query().Get("q"),
		Page:     pageParam(r),
		PageSize: pageSizeParam(r),
	})
	if err != nil {
		writeServiceError(w, handler.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// CreateItem creates a new item owned by the authenticated user
func (handler *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var form validation.ItemForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user := GetUser(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	item, err := handler.itemService.CreateItem(r.Context(), inbound.CreateItemRequest{
		Title:       form.Title,
		Description: form.Description,
		OwnerID:     &user.ID,
	})
	if err != nil {
		writeServiceError(w, handler.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// GetItem returns a single item
func (handler *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	item, err := handler.itemService.GetItem(r.Context(), itemID)
	if err != nil {
		writeServiceError(w, handler.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// UpdateItem replaces an item's title and description
func (handler *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	var form validation.ItemForm
	if err := decodeJSON(r, &form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user := GetUser(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	item, err := handler.itemService.UpdateItem(r.Context(), inbound.UpdateItemRequest{
		ItemID:      itemID,
		Title:       form.Title,
		Description: form.Description,
		ActorID:     user.ID,
	})
	if err != nil {
		writeServiceError(w, handler.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// DeleteItem removes an item; repeating the delete is not an error
func (handler *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := itemIDParam(r)
	if !ok {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	user := GetUser(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := handler.itemService.DeleteItem(r.Context(), itemID, user.ID); err != nil {
		writeServiceError(w, handler.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
