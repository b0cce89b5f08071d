package queries

import (
	"context"

	"milkround/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrdersForDateQueryHandler reads all orders due on a given delivery day.
type GetOrdersForDateQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersForDateQueryHandler creates a handler for delivery day queries.
func NewGetOrdersForDateQueryHandler(db *gorm.DB) GetOrdersForDateQueryHandler {
	return GetOrdersForDateQueryHandler{db: db}
}

// Handle returns the day's orders, newest placement first like the other
// order listings.
func (h GetOrdersForDateQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersForDateQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders o
		JOIN accounts a ON a.id = o.customer_id
		WHERE o.delivery_date = ?
		ORDER BY o.created_at DESC
	`, query.Date().Time()).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("query orders for date", err)
	}
	defer rows.Close()

	return scanOrderViews(rows)
}
