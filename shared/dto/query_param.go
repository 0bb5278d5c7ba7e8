package dto

import "todoapp/shared/constant"

const SortDirAsc = "ASC"

// QueryParams carries the ordering of a list query. SortBy is interpolated into SQL, so it must
// name a column of the table and never come from user input.
type QueryParams struct {
	SortBy  string `json:"sort_by"`
	SortDir string `json:"sort_dir"`
}

func (q *QueryParams) SetDefault() {
	if q.SortBy == "" {
		q.SortBy = constant.DefaultValueSortBy
	}

	if q.SortDir == "" {
		q.SortDir = constant.DefaultValueSortDir
	}
}
