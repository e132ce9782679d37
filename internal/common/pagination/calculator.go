package pagination

// CalculateOffset calculates the slice offset for a page number and limit.
// Page numbers are 1-based, so page 1 has offset 0.
//
// Formula: offset = (page - 1) * limit
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages calculates the total number of pages for a filtered set.
// Uses ceiling division and always returns at least 1, even for an empty set,
// so page controls have a well-defined "page 1 of 1" state.
//
// Examples:
//   - Total 0, Limit 10 -> 1 page
//   - Total 10, Limit 10 -> 1 page
//   - Total 12, Limit 5 -> 3 pages
func CalculateTotalPages(total, limit int) int {
	if total == 0 {
		return 1
	}
	return (total + limit - 1) / limit
}

// ClampPage clamps page into [1, totalPages].
// A stored page number can exceed totalPages after the filter changes; the
// contract is to silently clamp rather than render an empty page with controls
// claiming a different state.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Slice returns the page-th slice [(page-1)*limit, page*limit) of items.
// Out-of-range pages return an empty (non-nil) slice.
func Slice[T any](items []T, page, limit int) []T {
	start := CalculateOffset(page, limit)
	if start >= len(items) || start < 0 {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
