package domain

// Page is a 1-based page request mapped to LIMIT/OFFSET.
type Page struct {
	Page    int
	PerPage int
}

const (
	DefaultPerPage = 50
	MaxPerPage     = 200
)

// NewPage clamps page and perPage into valid ranges.
func NewPage(page, perPage int) Page {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Page{Page: page, PerPage: perPage}
}

func (p Page) Limit() int  { return p.PerPage }
func (p Page) Offset() int { return (p.Page - 1) * p.PerPage }
