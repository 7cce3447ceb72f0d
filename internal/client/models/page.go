package models

// Pagination mirrors the envelope pagination block. Pages are 1-indexed.
type Pagination struct {
	Total int `json:"total"`
	Pages int `json:"pages"`
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

// Page is one page of a listing endpoint.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// HasNext reports whether a page after Pagination.Page exists.
func (p Page[T]) HasNext() bool {
	return p.Pagination.Page > 0 && p.Pagination.Page < p.Pagination.Pages
}
