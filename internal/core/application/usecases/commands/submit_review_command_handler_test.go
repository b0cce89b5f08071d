package commands_test

import (
	"errors"
	"testing"

	"milkround/internal/core/application/usecases/commands"
	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitReviewCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewSubmitReviewCommand(kernel.NewUUID(), customerID, 5, "great service")

	repo := new(MockReviewRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReviewRepository").Return(repo).Once(),
		repo.On("ExistsForCustomer", mock.Anything, customerID).Return(false, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*review.Review")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSubmitReviewCommandHandler_Handle_AlreadyReviewed(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewSubmitReviewCommand(kernel.NewUUID(), customerID, 3, "")

	repo := new(MockReviewRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReviewRepository").Return(repo).Once(),
		repo.On("ExistsForCustomer", mock.Anything, customerID).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSubmitReviewCommandHandler_Handle_ExistsCheckError(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewSubmitReviewCommand(kernel.NewUUID(), customerID, 3, "")

	repo := new(MockReviewRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReviewRepository").Return(repo).Once(),
		repo.On("ExistsForCustomer", mock.Anything, customerID).
			Return(false, errors.New("query failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReviewCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestNewSubmitReviewCommand_Validation(t *testing.T) {
	t.Run("should reject out of range rating", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			_, err := commands.NewSubmitReviewCommand(kernel.NewUUID(), kernel.NewUUID(), rating, "")

			require.ErrorIs(t, err, commands.ErrRatingIsInvalid)
		}
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.SubmitReviewCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrSubmitReviewCommandIsNotConstructed)
	})
}
