package rules

// Rating is the caller-supplied aggregate written verbatim to the target.
// The contract deliberately trusts the caller with the aggregation; see the
// rate handlers for the concurrency caveat.
type Rating struct {
	Score        float64 `json:"score"`
	TotalRatings int     `json:"totalRatings"`
}

func (r Rating) Validate() error {
	if r.Score < 0 || r.Score > 5 {
		return &InvalidRatingError{Reason: "rating must be between 0 and 5"}
	}
	if r.TotalRatings < 0 {
		return &InvalidRatingError{Reason: "total ratings cannot be negative"}
	}
	return nil
}

// RateRequest is the body of every rate endpoint: the target id plus the new
// aggregate, flattened.
type RateRequest struct {
	ID int `json:"id"`
	Rating
}

type RateResponse struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Score        float64 `json:"score"`
	TotalRatings int     `json:"totalRatings"`
}
