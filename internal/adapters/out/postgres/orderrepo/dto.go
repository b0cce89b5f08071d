// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Customer and delivery date are indexed together because the
// one-active-order-per-date check and the daily delivery run both filter on
// them.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index:idx_orders_customer_date"`
	Quantity     int
	TotalPrice   int
	DeliveryDate time.Time `gorm:"type:date;index:idx_orders_customer_date;index"`
	Status       int       `gorm:"index"`
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		Quantity:     aggregate.Quantity(),
		TotalPrice:   aggregate.TotalPrice(),
		DeliveryDate: aggregate.DeliveryDate().Time(),
		Status:       int(aggregate.Status()),
		Notes:        aggregate.Notes(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.Quantity,
		dto.TotalPrice,
		kernel.DateOf(dto.DeliveryDate),
		order.Status(dto.Status),
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
