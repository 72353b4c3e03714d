package dto

import (
	"net/http"
	"starlight/shared/constant"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the request query. With
// defaultRequest set, a missing page or limit takes the default; without it
// only the parameters present in the request are set.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = min(limitInt, constant.MaxValueLimit)
		}
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// Paged reports whether the request asked for a page rather than the whole list.
func (q *QueryParams) Paged() bool {
	return q.Page > 0 || q.Limit > 0
}

// Apply orders items by SortDir and cuts the requested page out of them.
// Items are assumed to be in ascending order. A page past the end is empty.
func Apply[T any](q QueryParams, items []T) []T {
	ordered := items

	if q.SortDir == SortDirDesc {
		ordered = make([]T, len(items))
		for i, item := range items {
			ordered[len(items)-1-i] = item
		}
	}

	if q.Limit <= 0 {
		return ordered
	}

	page := max(q.Page, 1)

	pages := (len(ordered) + q.Limit - 1) / q.Limit
	if page-1 >= pages {
		return []T{}
	}

	start := (page - 1) * q.Limit

	end := min(start+q.Limit, len(ordered))

	return ordered[start:end]
}
