package request

import (
	"net/url"
	"strconv"
)

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// PaginationFromQuery reads page/per_page from the query string, defaulting
// to the first page of 10 and clamping per_page to 100.
func PaginationFromQuery(query url.Values) *PaginatedRequest {
	page, err := strconv.Atoi(query.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(query.Get("per_page"))
	if err != nil || perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}

	return &PaginatedRequest{Page: page, PerPage: perPage}
}
