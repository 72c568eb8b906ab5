package dto

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"visitorpass/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir. With defaults set, missing paging falls back
// to constant.DefaultValuePage and constant.DefaultValueLimit; limit is capped at constant.MaxValueLimit.
func (q *QueryParams) FromRequest(r *http.Request, defaults bool) {
	query := r.URL.Query()

	if page, err := strconv.Atoi(query.Get(constant.RequestParamPage)); err == nil && page > 0 {
		q.Page = page
	}

	if limit, err := strconv.Atoi(query.Get(constant.RequestParamLimit)); err == nil && limit > 0 {
		q.Limit = min(limit, constant.MaxValueLimit)
	}

	if sortBy := query.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if dir := strings.ToUpper(query.Get(constant.RequestParamSortDir)); dir == SortDirAsc || dir == SortDirDesc {
		q.SortDir = dir
	}

	if !defaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// RestrictSort replaces a sort column outside allowed with fallback. SortBy is interpolated into
// ORDER BY, so every handler that accepts sort_by must call it.
func (q *QueryParams) RestrictSort(allowed []string, fallback string) {
	if !slices.Contains(allowed, q.SortBy) {
		q.SortBy = fallback
	}

	if q.SortDir == "" {
		q.SortDir = constant.DefaultValueSortDir
	}
}
