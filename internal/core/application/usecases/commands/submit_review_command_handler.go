package commands

import (
	"context"
	"time"

	"milkround/internal/core/domain/model/review"
	"milkround/internal/pkg/errs"
)

// SubmitReviewCommandHandler handles review submission, enforcing the
// one-review-per-customer rule. The check and the insert run in one
// transaction; the unique index on the customer column backstops the check.
type SubmitReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewSubmitReviewCommandHandler creates a handler for review submission.
func NewSubmitReviewCommandHandler(uowFactory ReviewUoWFactory) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review submission command.
func (h *SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := review.NewReview(
		cmd.ReviewID(),
		cmd.CustomerID(),
		cmd.Rating(),
		cmd.Comment(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewRepo := uow.ReviewRepository()

	exists, err := reviewRepo.ExistsForCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewObjectAlreadyExistsError("review", cmd.CustomerID().String())
	}

	if err = reviewRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
