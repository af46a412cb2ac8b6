package headline

import (
	"fmt"
	"math"
)

// Headline mirrors one row in the `schlagzeilen` table.  ID is zero until
// the store assigns it on insert and is never changed afterwards.
type Headline struct {
	ID       int64  `db:"id"          json:"id"`
	Text     string `db:"schlagzeile" json:"schlagzeile"`
	Domestic bool   `db:"inland"      json:"inland"`
}

// Equal compares text and category flag only.  The ID is left out because
// it is not yet set on freshly generated headlines.
func (h Headline) Equal(o Headline) bool {
	return h.Text == o.Text && h.Domestic == o.Domestic
}

// CategoryLabel returns "Inland" or "Ausland".
func (h Headline) CategoryLabel() string { return categoryLabel(h.Domestic) }

// String renders e.g. "Schlagzeile ID=123 (Inland): Dürre in Bayern".
func (h Headline) String() string {
	return fmt.Sprintf("Schlagzeile ID=%d (%s): %s", h.ID, h.CategoryLabel(), h.Text)
}

// CategoryCount is one row of the grouping query over the `inland` flag.
type CategoryCount struct {
	Domestic bool  `db:"inland" json:"inland"`
	Count    int64 `db:"anzahl" json:"anzahl"`
}

func (c CategoryCount) CategoryLabel() string { return categoryLabel(c.Domestic) }

func categoryLabel(domestic bool) string {
	if domestic {
		return "Inland"
	}
	return "Ausland"
}

// PageRequest selects one slice of an ID-ascending result.  Number is
// 0-based; the HTTP boundary speaks 1-based pages.
type PageRequest struct {
	Number int
	Size   int
}

// Offset is the number of rows skipped before this page.  It saturates at
// math.MaxInt instead of wrapping negative for absurd page numbers.
func (p PageRequest) Offset() int {
	if p.Size > 0 && p.Number > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Number * p.Size
}

// Page is one bounded slice of a query result plus totals.
type Page struct {
	Content       []Headline
	Number        int
	Size          int
	TotalElements int64
	TotalPages    int
}

// NumberOfElements is the count of headlines on this page.
func (p Page) NumberOfElements() int { return len(p.Content) }

// newPage derives TotalPages from total and the requested size.
func newPage(content []Headline, req PageRequest, total int64) Page {
	pages := 0
	if req.Size > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	if content == nil {
		content = []Headline{}
	}
	return Page{
		Content:       content,
		Number:        req.Number,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
