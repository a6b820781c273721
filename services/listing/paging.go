// Package listing holds the shared pure helpers behind every filterable,
// paginated table surface: page math, the sliding page-button window, and
// the case-insensitive multi-field search predicate.
package listing

import (
	"strings"

	"github.com/sud2610/set-u-free-sub000/models"
)

// PageWindow returns the page numbers to render as buttons: all pages when
// there are five or fewer, otherwise a five-wide window anchored to the
// start, middle or end depending on how close current is to a boundary.
func PageWindow(totalPages, current int) []int {
	if totalPages <= 0 {
		return nil
	}
	if totalPages <= 5 {
		pages := make([]int, totalPages)
		for i := range pages {
			pages[i] = i + 1
		}
		return pages
	}

	var start int
	switch {
	case current <= 3:
		start = 1
	case current >= totalPages-2:
		start = totalPages - 4
	default:
		start = current - 2
	}

	pages := make([]int, 5)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}

// Page clamps page into range and returns the slice bounds [lo, hi) for a
// page of size pageSize over totalItems, together with the PageInfo.
func Page(totalItems, page, pageSize int) (lo, hi int, info models.PageInfo) {
	if pageSize <= 0 {
		pageSize = 10
	}
	totalPages := (totalItems + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	lo = (page - 1) * pageSize
	if lo < 0 {
		lo = 0
	}
	hi = lo + pageSize
	if hi > totalItems {
		hi = totalItems
	}

	info = models.PageInfo{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
		Window:     PageWindow(totalPages, page),
	}
	return lo, hi, info
}

// MatchesSearch reports whether term is a case-insensitive substring of any
// of the given fields (OR-combined). An empty term matches everything.
func MatchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}
