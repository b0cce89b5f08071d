package reviewrepo

import (
	"context"
	"errors"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/core/domain/model/review"
	"milkround/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// GormReviewRepository implements ReviewRepository using GORM. Driver and
// connection failures are reported as StoreUnavailableError so callers can
// tell a transient outage from a domain error.
type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new review to the database. A second review from the same
// customer trips the unique index and is reported as an
// ObjectAlreadyExistsError.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("review", aggregate.CustomerID().String(), err)
		}
		return errs.NewStoreUnavailableError("add review", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ExistsForCustomer reports whether the customer already left a review.
func (r *GormReviewRepository) ExistsForCustomer(ctx context.Context, customerID kernel.UUID) (bool, error) {
	if err := customerID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&ReviewDTO{}).
		Where("customer_id = ?", customerID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, errs.NewStoreUnavailableError("count reviews", err)
	}

	return count > 0, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation
}
