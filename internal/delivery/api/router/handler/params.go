package handler

import (
	"strconv"

	"portal/internal/domain/entity"
	"portal/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// listRequest is the paging query shared by the table endpoints.
type listRequest struct {
	Page  int    `query:"page"`
	Limit int    `query:"limit"`
	Role  string `query:"role"`
}

func (r listRequest) toQuery() repository.ListQuery {
	query := repository.ListQuery{Page: r.Page, Limit: r.Limit}
	if r.Role != "" {
		query.Role = entity.ParseRole(r.Role)
	}

	return query
}

// pathID parses a positive int64 path parameter.
func pathID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
