package models

// Pagination and sort defaults shared by the list queries.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	SortAsc  = "asc"
	SortDesc = "desc"
)

// productSortFields is the whitelist of sortable product columns.
var productSortFields = map[string]string{
	"name":       "name",
	"category":   "category",
	"unit_price": "unit_price",
	"stock":      "stock",
	"created_at": "created_at",
}

// userSortFields is the whitelist of sortable user columns.
var userSortFields = map[string]string{
	"name":       "name",
	"email":      "email",
	"created_at": "created_at",
}

// ProductQuery carries the list parameters for products. Call Normalize
// before handing it to a repository.
type ProductQuery struct {
	Page      int
	Limit     int
	Category  string
	Status    string
	Search    string
	SortBy    string
	SortOrder string
}

// Normalize clamps pagination and resolves the sort field against the
// whitelist. Unknown sort fields fall back to name ascending rather than
// failing.
func (q *ProductQuery) Normalize() {
	q.Page, q.Limit = normalizePage(q.Page, q.Limit)
	q.SortBy, q.SortOrder = normalizeSort(q.SortBy, q.SortOrder, productSortFields, "name")
}

// Offset returns the number of records to skip for the requested page.
func (q *ProductQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// UserQuery carries the list parameters for users.
type UserQuery struct {
	Page      int
	Limit     int
	Status    string
	Search    string
	SortBy    string
	SortOrder string
}

// Normalize clamps pagination and resolves the sort field, falling back to
// name ascending for unknown fields.
func (q *UserQuery) Normalize() {
	q.Page, q.Limit = normalizePage(q.Page, q.Limit)
	q.SortBy, q.SortOrder = normalizeSort(q.SortBy, q.SortOrder, userSortFields, "name")
}

// Offset returns the number of records to skip for the requested page.
func (q *UserQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

func normalizeSort(sortBy, sortOrder string, whitelist map[string]string, fallback string) (string, string) {
	column, ok := whitelist[sortBy]
	if !ok {
		column = fallback
	}
	if sortOrder != SortDesc {
		sortOrder = SortAsc
	}
	return column, sortOrder
}

// TotalPages returns the number of pages needed for total records at the
// given page size: ceil(total/limit), 0 when there are no records.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}
