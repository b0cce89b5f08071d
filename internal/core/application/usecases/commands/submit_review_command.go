package commands

import (
	"errors"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/core/domain/model/review"
	"milkround/internal/pkg/guard"
)

var (
	ErrSubmitReviewCommandIsNotConstructed = errors.New(
		"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
	)
	ErrRatingIsInvalid = errors.New("rating must be between 1 and 5")
)

// SubmitReviewCommand represents a customer's request to leave service
// feedback. Each customer may review at most once; duplicates are rejected
// by the handler.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID   kernel.UUID
	customerID kernel.UUID
	rating     int
	comment    string

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand creates a command to submit a review.
func NewSubmitReviewCommand(
	reviewID kernel.UUID,
	customerID kernel.UUID,
	rating int,
	comment string,
) (SubmitReviewCommand, error) {
	cmd := SubmitReviewCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setCustomerID(customerID),
		cmd.setRating(rating),
	); err != nil {
		return SubmitReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier assigned to the new review.
func (c SubmitReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// CustomerID returns the reviewing customer's identifier.
func (c SubmitReviewCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Rating returns the star rating.
func (c SubmitReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the optional comment.
func (c SubmitReviewCommand) Comment() string {
	return c.comment
}

func (c *SubmitReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *SubmitReviewCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SubmitReviewCommand) setRating(rating int) error {
	if rating < review.MinRating || rating > review.MaxRating {
		return ErrRatingIsInvalid
	}

	c.rating = rating
	return nil
}
