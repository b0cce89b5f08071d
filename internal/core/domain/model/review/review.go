package review

import (
	"errors"
	"strings"
	"time"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/pkg/errs"
	"milkround/internal/pkg/guard"
)

const (
	// MinRating is the lowest rating a customer can give.
	MinRating = 1

	// MaxRating is the highest rating a customer can give.
	MaxRating = 5
)

// ErrReviewIsNotConstructed is returned when a Review instance was not
// created through NewReview or RestoreReview.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview or RestoreReview")

// Review is a customer's feedback on the service: a star rating with an
// optional comment. Each customer leaves at most one review; the uniqueness
// rule is enforced at the use case and storage levels.
type Review struct { //nolint:recvcheck //using for validation
	id         kernel.UUID
	customerID kernel.UUID
	rating     int
	comment    string
	createdAt  time.Time

	guard guard.ConstructorGuard
}

// NewReview creates a Review with a rating in [MinRating, MaxRating].
// The comment is optional and trimmed of surrounding whitespace.
func NewReview(
	id kernel.UUID,
	customerID kernel.UUID,
	rating int,
	comment string,
	now time.Time,
) (*Review, error) {
	r := &Review{
		comment:   strings.TrimSpace(comment),
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCustomerID(customerID),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview reconstructs a Review from persisted state.
func RestoreReview(
	id kernel.UUID,
	customerID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	r := &Review{
		comment:   comment,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCustomerID(customerID),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Review was constructed via NewReview or RestoreReview.
func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}

	return r.guard.Validate(ErrReviewIsNotConstructed)
}

// IsEqual compares two reviews by their unique identifiers.
func (r *Review) IsEqual(other *Review) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// CustomerID returns the identifier of the reviewing customer.
func (r *Review) CustomerID() kernel.UUID {
	return r.customerID
}

// Rating returns the star rating.
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the optional free-text comment.
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt returns the submission timestamp.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	r.customerID = customerID
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	r.rating = rating
	return nil
}
