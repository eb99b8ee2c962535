package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/hookline/gateway/internal/domain"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// ListEventsQueryParams holds query parameters for GET /webhooks
type ListEventsQueryParams struct {
	// Filters
	Status string `form:"status"`
	Source string `form:"source"`

	// Pagination (1-based page numbering)
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=50"`
}

// ParseListEventsQuery parses and validates query parameters for GET /webhooks
func ParseListEventsQuery(c *gin.Context) (*ListEventsQueryParams, error) {
	var params ListEventsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Status != "" && !domain.EventStatus(params.Status).Valid() {
		return nil, fmt.Errorf("invalid status: %s", params.Status)
	}

	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit <= 0 {
		params.Limit = defaultPageSize
	}
	if params.Limit > maxPageSize {
		params.Limit = maxPageSize
	}

	return &params, nil
}

// Offset converts the 1-based page window into a row offset
func (p *ListEventsQueryParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
