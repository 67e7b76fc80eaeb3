package types

import (
	"strconv"
	"strings"
)

// Pagination 分页常量
const (
	DefaultPage     = 1  // 默认页码
	DefaultPageSize = 10 // 默认每页数量
	MaxPageSize     = 50 // 每页上限
)

// ParsePagination turns raw query values into a page and page size.
// Empty or non-integer input falls back to the defaults; page is clamped
// to at least 1 and pageSize to [1, MaxPageSize].
func ParsePagination(pageRaw, sizeRaw string) (page, pageSize int) {
	return ClampPagination(parseIntOr(pageRaw, DefaultPage), parseIntOr(sizeRaw, DefaultPageSize))
}

// ClampPagination bounds page to at least 1 and pageSize to [1, MaxPageSize].
func ClampPagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

func parseIntOr(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// TotalPages is never less than 1, even for an empty table.
func TotalPages(total int64, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		return 1
	}
	return pages
}
