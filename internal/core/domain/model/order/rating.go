package order

import "dispatch/internal/pkg/errs"

const (
	minRatingScore = 1
	maxRatingScore = 5
)

func newRatingOutOfRangeError(score int) error {
	return errs.NewValueIsOutOfRangeError("rating", score, minRatingScore, maxRatingScore)
}

// Rating is the customer's verdict on a completed delivery: a score from 1 to
// 5 and an optional free-text comment.
type Rating struct {
	score   int
	comment string
}

// NewRating creates a Rating, rejecting scores outside 1..5.
func NewRating(score int, comment string) (Rating, error) {
	if score < minRatingScore || score > maxRatingScore {
		return Rating{}, newRatingOutOfRangeError(score)
	}
	return Rating{score: score, comment: comment}, nil
}

// Score returns the 1..5 score.
func (r Rating) Score() int {
	return r.score
}

// Comment returns the optional comment; empty when the customer left none.
func (r Rating) Comment() string {
	return r.comment
}
