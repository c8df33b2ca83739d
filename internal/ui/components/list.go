package components

import "fmt"

// Window returns the [start,end) range of a list of total items that keeps
// cursor visible with at most pageSize rows. A negative cursor shows the top.
func Window(cursor, total, pageSize int) (int, int) {
	if total <= 0 {
		return 0, 0
	}
	if pageSize <= 0 || pageSize >= total {
		return 0, total
	}
	cursor = min(max(cursor, 0), total-1)
	start := 0
	if cursor >= pageSize {
		start = cursor - pageSize + 1
	}
	return start, start + pageSize
}

// WindowFooter describes a partial window, or returns "" when everything fits.
func WindowFooter(start, end, total int) string {
	if start == 0 && end >= total {
		return ""
	}
	return fmt.Sprintf("%d-%d of %d", start+1, end, total)
}
