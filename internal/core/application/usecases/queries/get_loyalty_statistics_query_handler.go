package queries

import (
	"context"
	"time"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/core/domain/model/order"
	"milkround/internal/core/domain/services"
	"milkround/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLoyaltyStatisticsQueryHandler computes a customer's loyalty figures.
// Reads the customer's delivered orders and delegates the arithmetic to the
// LoyaltyCalculator domain service so the streak rules live in one place.
type GetLoyaltyStatisticsQueryHandler struct {
	db         *gorm.DB
	calculator services.LoyaltyCalculator
}

// NewGetLoyaltyStatisticsQueryHandler creates a handler for loyalty
// statistics queries.
func NewGetLoyaltyStatisticsQueryHandler(db *gorm.DB) GetLoyaltyStatisticsQueryHandler {
	return GetLoyaltyStatisticsQueryHandler{
		db:         db,
		calculator: services.NewLoyaltyCalculator(),
	}
}

// Handle computes the bottle count and current streak from the customer's
// delivered orders, with the streak anchored to today.
func (h GetLoyaltyStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetLoyaltyStatisticsQuery,
) (GetLoyaltyStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoyaltyStatisticsQueryResponse{}, err
	}

	delivered, err := h.loadDeliveredOrders(ctx, query.CustomerID())
	if err != nil {
		return GetLoyaltyStatisticsQueryResponse{}, err
	}

	today := kernel.DateOf(time.Now().UTC())

	return GetLoyaltyStatisticsQueryResponse{
		BottleCount:   h.calculator.DeliveredBottleCount(delivered),
		CurrentStreak: h.calculator.CurrentStreak(delivered, today),
	}, nil
}

func (h GetLoyaltyStatisticsQueryHandler) loadDeliveredOrders(
	ctx context.Context,
	customerID kernel.UUID,
) ([]*order.Order, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			quantity,
			total_price,
			delivery_date,
			created_at,
			updated_at
		FROM orders
		WHERE customer_id = ? AND status = ?
		ORDER BY delivery_date DESC
	`, customerID.Bytes(), order.Delivered).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("query delivered orders", err)
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)

	for rows.Next() {
		var (
			rawID        uuid.UUID
			rawCustomer  uuid.UUID
			quantity     int
			totalPrice   int
			deliveryDate time.Time
			createdAt    time.Time
			updatedAt    time.Time
		)

		if err = rows.Scan(&rawID, &rawCustomer, &quantity, &totalPrice,
			&deliveryDate, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return nil, idErr
		}

		owner, ownerErr := kernel.UUIDFromBytes(rawCustomer[:])
		if ownerErr != nil {
			return nil, ownerErr
		}

		o, restoreErr := order.RestoreOrder(id, owner, quantity, totalPrice,
			kernel.DateOf(deliveryDate), order.Delivered, "", createdAt, updatedAt)
		if restoreErr != nil {
			return nil, restoreErr
		}

		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
