// Package paging turns 1-based page numbers into row offsets.
package paging

import "math"

// Offset returns the row offset of page for pages of size rows. Pages below 1
// read as 1. ok is false when the offset does not fit in an int; such a page
// lies past any stored data and must be answered with an empty list.
func Offset(page, size int) (offset int, ok bool) {
	if size <= 0 {
		return 0, false
	}
	if page < 1 {
		page = 1
	}
	if page-1 > math.MaxInt/size {
		return 0, false
	}
	return (page - 1) * size, true
}
