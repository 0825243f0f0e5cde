package pagination

import "fmt"

// InvalidParamsError reports page/limit values below 1.
type InvalidParamsError struct {
	Page  int
	Limit int
}

func (e *InvalidParamsError) Error() string {
	return fmt.Sprintf("Invalid pagination parameters: page=%d, limit=%d. Both must be >= 1.", e.Page, e.Limit)
}

// RangeError reports a page whose first index lies past the end of the data.
type RangeError struct{ Page int }

func (e *RangeError) Error() string {
	return fmt.Sprintf("Page %d exceeds available data range.", e.Page)
}

// Paginate returns the 1-based page of size limit from items.
// The last page may be shorter than limit. A page whose start index is at or
// past len(items) fails with RangeError; this includes page 1 over empty input.
func Paginate[T any](items []T, page, limit int) ([]T, error) {
	if page < 1 || limit < 1 {
		return nil, &InvalidParamsError{Page: page, Limit: limit}
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return nil, &RangeError{Page: page}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], nil
}
