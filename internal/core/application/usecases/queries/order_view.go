// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain repositories and read projections with
// raw SQL, joining the customer profile onto order rows so the API never
// needs a second round trip.
package queries

import (
	"database/sql"
	"time"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderView is the read model for a single order row as the API presents
// it: order data plus the joined customer profile fields.
type OrderView struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	CustomerName string
	Phone        string
	Hall         string
	Room         string
	Quantity     int
	TotalPrice   int
	DeliveryDate kernel.Date
	Status       order.Status
	Notes        string
	CreatedAt    time.Time
}

// orderViewColumns is the select list shared by every order view query.
// The accounts join supplies the profile columns.
const orderViewColumns = `
	o.id,
	o.customer_id,
	a.name,
	a.phone,
	a.hall,
	a.room,
	o.quantity,
	o.total_price,
	o.delivery_date,
	o.status,
	o.notes,
	o.created_at
`

func scanOrderViews(rows *sql.Rows) ([]OrderView, error) {
	views := make([]OrderView, 0)

	for rows.Next() {
		var (
			view         OrderView
			rawID        uuid.UUID
			rawCustomer  uuid.UUID
			deliveryDate time.Time
			status       int
		)

		if err := rows.Scan(
			&rawID,
			&rawCustomer,
			&view.CustomerName,
			&view.Phone,
			&view.Hall,
			&view.Room,
			&view.Quantity,
			&view.TotalPrice,
			&deliveryDate,
			&status,
			&view.Notes,
			&view.CreatedAt,
		); err != nil {
			return nil, err
		}

		id, err := kernel.UUIDFromBytes(rawID[:])
		if err != nil {
			return nil, err
		}
		view.ID = id

		customerID, err := kernel.UUIDFromBytes(rawCustomer[:])
		if err != nil {
			return nil, err
		}
		view.CustomerID = customerID

		view.DeliveryDate = kernel.DateOf(deliveryDate)
		view.Status = order.Status(status)

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
