package utils

// PaginationParams holds the normalized page/limit pair bound from
// query strings. A zero limit means the caller wants every row.
type PaginationParams struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// PaginationMeta describes the page a list response was cut from.
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// GetPaginationParams normalizes raw page/limit values. Pages start
// at 1; negative limits collapse to the unlimited zero value.
func GetPaginationParams(page, limit int) PaginationParams {
	params := PaginationParams{Page: page, Limit: limit}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 0 {
		params.Limit = 0
	}
	return params
}

// Offset returns the row offset for the current page.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta builds the response metadata for a list of totalCount rows.
func (p PaginationParams) Meta(totalCount int64) PaginationMeta {
	if p.Limit <= 0 {
		return PaginationMeta{
			Page:       1,
			Limit:      int(totalCount),
			TotalCount: totalCount,
			TotalPages: 1,
		}
	}

	totalPages := int((totalCount + int64(p.Limit) - 1) / int64(p.Limit))
	return PaginationMeta{
		Page:       p.Page,
		Limit:      p.Limit,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
