package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// decodeJSON parses a request body into dst, rejecting unknown payloads
// cheaply; malformed bodies are a client error, never a server fault
func decodeJSON(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// itemIDParam extracts the numeric item ID from the route. A non-numeric
// ID behaves exactly like an absent item.
func itemIDParam(r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "itemID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// pageParam parses the page query value, falling back to page 1 on missing
// or malformed input and clamping to >= 1
func pageParam(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// pageSizeParam parses the optional page size override; 0 lets the service
// apply its configured default
func pageSizeParam(r *http.Request) int {
	raw := r.URL.Query().Get("page_size")
	if raw == "" {
		return 0
	}
	size, err := strconv.Atoi(raw)
	if err != nil || size < 1 {
		return 0
	}
	return size
}
