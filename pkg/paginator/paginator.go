// Package paginator translates page/limit query parameters into the
// limit/offset pairs repositories take, and back into page metadata.
package paginator

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Query is a 1-indexed page selection bound from the query string.
type Query struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Normalize returns q with a page of at least 1 and a limit in [1, MaxLimit].
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	switch {
	case q.Limit < 1:
		q.Limit = DefaultLimit
	case q.Limit > MaxLimit:
		q.Limit = MaxLimit
	}
	return q
}

// Offset is the number of rows skipped before the page starts.
func (q Query) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// Page describes one page of a listed result set.
type Page struct {
	Total      int  `json:"total"`
	Count      int  `json:"count"`
	Limit      int  `json:"per_page"`
	Current    int  `json:"current_page"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// FromOffset builds page metadata for count rows read at offset with the given limit.
func FromOffset(total, count, limit, offset int) Page {
	p := Page{Total: total, Count: count, Limit: limit, Current: 1}
	if limit <= 0 {
		return p
	}
	p.Current = offset/limit + 1
	p.TotalPages = (total + limit - 1) / limit
	p.HasNext = p.Current < p.TotalPages
	p.HasPrev = p.Current > 1
	return p
}
