package rules

// Pagination carries the page/limit pair of a find-all request. The transport
// validation layer coerces types; bounds are re-checked here since the repos
// feed Offset straight into SQL.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (p Pagination) Validate() error {
	if p.Page < 1 {
		return &ValidationError{Reason: "page must be greater than 0"}
	}
	if p.Limit < 1 {
		return &ValidationError{Reason: "limit must be greater than 0"}
	}
	return nil
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// LastPage is ceil(total/limit), 0 for an empty result set. A page beyond
// the last one yields an empty data slice, never an error.
func (p Pagination) LastPage(total int) int {
	if total == 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}

type Meta struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	LastPage int `json:"lastPage"`
}

func (p Pagination) MetaFor(total int) Meta {
	return Meta{
		Total:    total,
		Page:     p.Page,
		LastPage: p.LastPage(total),
	}
}
