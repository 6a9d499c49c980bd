// Package pagination computes LIMIT/OFFSET windows over ordered collections.
package pagination

import (
	"math"
	"strconv"
)

// DefaultSize is the number of items shown on every listing page.
const DefaultSize = 30

// Page is a 1-based page number with a fixed size.
type Page struct {
	Number int
	Size   int
}

// New clamps number into [1, MaxNumber(size)] so offsets never overflow.
func New(number, size int) Page {
	if size < 1 {
		size = DefaultSize
	}
	if number < 1 {
		number = 1
	}
	if limit := MaxNumber(size); number > limit {
		number = limit
	}
	return Page{Number: number, Size: size}
}

// MaxNumber is the highest page number whose offset and successor still fit
// in an int.
func MaxNumber(size int) int {
	if size < 1 {
		size = DefaultSize
	}
	if limit := math.MaxInt/size - 1; limit > 1 {
		return limit
	}
	return 1
}

// Parse reads a "page" query value. Empty or malformed input yields the first page.
func Parse(raw string) Page {
	number, err := strconv.Atoi(raw)
	if err != nil {
		number = 1
	}
	return New(number, DefaultSize)
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

func (p Page) Limit() int {
	return p.Size
}

// Bounds returns the [start, end) indexes of the page within total items.
// Pages past the end are empty.
func (p Page) Bounds(total int) (int, int) {
	start := p.Offset()
	if start > total {
		start = total
	}
	end := total
	if total-start > p.Size {
		end = start + p.Size
	}
	return start, end
}

func (p Page) TotalPages(total int) int {
	if total <= 0 || p.Size < 1 {
		return 1
	}
	return (total-1)/p.Size + 1
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}

func (p Page) HasNext(total int) bool {
	return p.Number < p.TotalPages(total)
}

func (p Page) Prev() int {
	if p.Number <= 1 {
		return 1
	}
	return p.Number - 1
}

func (p Page) Next() int {
	return p.Number + 1
}

// Numbers lists every page number for total items.
func (p Page) Numbers(total int) []int {
	pages := p.TotalPages(total)
	numbers := make([]int, pages)
	for i := range numbers {
		numbers[i] = i + 1
	}
	return numbers
}

// Entries describes the visible range, e.g. "31 - 31 of 31".
func (p Page) Entries(total int) (first, last int) {
	start, end := p.Bounds(total)
	if start == end {
		return 0, 0
	}
	return start + 1, end
}
