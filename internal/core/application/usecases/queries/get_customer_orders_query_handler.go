package queries

import (
	"context"

	"milkround/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler reads a customer's order history with the
// profile fields joined on.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order
// history queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns the customer's orders, newest placement first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders o
		JOIN accounts a ON a.id = o.customer_id
		WHERE o.customer_id = ?
		ORDER BY o.created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("query customer orders", err)
	}
	defer rows.Close()

	return scanOrderViews(rows)
}
