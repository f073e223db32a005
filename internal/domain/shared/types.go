package shared

// ItemPage represents one bounded slice of the filtered item sequence
type ItemPage struct {
	Items      []*Item `json:"items"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalPages int     `json:"total_pages"`
}

// AuditAction identifies the kind of item write being recorded
type AuditAction string

const (
	AuditActionCreate AuditAction = "item.created"
	AuditActionUpdate AuditAction = "item.updated"
	AuditActionDelete AuditAction = "item.deleted"
)
