package view

import (
	"fmt"

	"github.com/sanyco86/sample-app/internal/pagination"
)

// Pager renders page links for a listing at Path.
type Pager struct {
	Path  string
	Page  pagination.Page
	Total int
}

func NewPager(path string, page pagination.Page, total int) Pager {
	return Pager{
		Path:  path,
		Page:  page,
		Total: total,
	}
}

func (p Pager) Show() bool {
	return p.Page.TotalPages(p.Total) > 1
}

func (p Pager) Current() int {
	return p.Page.Number
}

func (p Pager) HasPrev() bool {
	return p.Page.HasPrev()
}

func (p Pager) HasNext() bool {
	return p.Page.HasNext(p.Total)
}

func (p Pager) Prev() int {
	return p.Page.Prev()
}

func (p Pager) Next() int {
	return p.Page.Next()
}

func (p Pager) Numbers() []int {
	return p.Page.Numbers(p.Total)
}

func (p Pager) URL(number int) string {
	return fmt.Sprintf("%s?page=%d", p.Path, number)
}

// Entries describes the visible range, e.g. "31 - 31 of 31".
func (p Pager) Entries() string {
	first, last := p.Page.Entries(p.Total)
	return fmt.Sprintf("%d - %d of %d", first, last, p.Total)
}
