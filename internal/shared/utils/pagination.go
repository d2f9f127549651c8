package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hostelhub/internal/shared/constants"
)

// Pagination holds normalized page parameters parsed from a request.
type Pagination struct {
	Page     int
	PageSize int
}

// Offset returns the database offset for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ParsePagination reads page and page_size query parameters with defaults
// and clamps page_size to the configured maximum.
func ParsePagination(c *gin.Context) Pagination {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	if err != nil || page < 1 {
		page = constants.DefaultPage
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	return Pagination{Page: page, PageSize: pageSize}
}

// ParseUintQuery parses a numeric query parameter.
func ParseUintQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

// ParseUintParam parses a numeric URL path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}
