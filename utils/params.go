package utils

import (
	"net/http"
	"strconv"
)

// ParsePagination reads page/limit query params with sane bounds.
func ParsePagination(r *http.Request) (page int, limit int) {
	q := r.URL.Query()

	page = 1
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		page = p
	}

	limit = 10
	if l, err := strconv.Atoi(q.Get("limit")); err == nil && l > 0 && l <= 100 {
		limit = l
	}
	return
}
