package kanban

// DefaultPageSize is the number of cards a column shows per page
const DefaultPageSize = 5

// Paginate returns the window [(page-1)*size, page*size) of s, clamped to its
// bounds. Pages below 1 behave like page 1.
func Paginate[T any](s []T, size, page int) []T {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(s) {
		return []T{}
	}
	end := start + size
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}

// TotalPages is ceil(n/size)
func TotalPages(n, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// DisplayPages is TotalPages with an empty column shown as a single page
func DisplayPages(n, size int) int {
	if p := TotalPages(n, size); p > 0 {
		return p
	}
	return 1
}
