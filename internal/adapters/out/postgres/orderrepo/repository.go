package orderrepo

import (
	"context"
	"errors"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/core/domain/model/order"
	"milkround/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM. Driver and
// connection failures are reported as StoreUnavailableError so callers can
// tell a transient outage from a domain error.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database. A unique violation on the active
// (customer_id, delivery_date) index means a concurrent request won the
// duplicate-date race and surfaces as a conflict.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause(
				"order for "+aggregate.DeliveryDate().String(), aggregate.CustomerID().String(), err)
		}
		return errs.NewStoreUnavailableError("add order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == "23505"
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return errs.NewStoreUnavailableError("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewStoreUnavailableError("get order", err)
	}

	return toDomain(dto)
}

// GetActiveByCustomerAndDate retrieves the customer's non-cancelled order
// for the given delivery date. Returns nil without error when no such order
// exists.
func (r *GormOrderRepository) GetActiveByCustomerAndDate(
	ctx context.Context,
	customerID kernel.UUID,
	date kernel.Date,
) (*order.Order, error) {
	if err := errors.Join(customerID.Validate(), date.Validate()); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "customer_id = ? AND delivery_date = ? AND status <> ?",
			customerID.Bytes(), date.Time(), order.Cancelled).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewStoreUnavailableError("get active order", err)
	}

	return toDomain(dto)
}

// GetDeliveredByCustomer retrieves all delivered orders of a customer.
func (r *GormOrderRepository) GetDeliveredByCustomer(
	ctx context.Context,
	customerID kernel.UUID,
) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("delivery_date DESC").
		Find(&dtos, "customer_id = ? AND status = ?", customerID.Bytes(), order.Delivered).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError("get delivered orders", err)
	}

	return toDomainSlice(dtos)
}

// GetStalePending retrieves pending orders whose delivery date falls before
// the given day.
func (r *GormOrderRepository) GetStalePending(ctx context.Context, before kernel.Date) ([]*order.Order, error) {
	if err := before.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND delivery_date < ?", order.Pending, before.Time()).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError("get stale pending orders", err)
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
