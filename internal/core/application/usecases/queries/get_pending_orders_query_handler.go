package queries

import (
	"context"

	"milkround/internal/core/domain/model/order"
	"milkround/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler reads the admin confirmation queue.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order
// queries.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle returns pending orders, newest placement first like the other
// order listings.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderViewColumns+`
		FROM orders o
		JOIN accounts a ON a.id = o.customer_id
		WHERE o.status = ?
		ORDER BY o.created_at DESC
	`, order.Pending).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("query pending orders", err)
	}
	defer rows.Close()

	return scanOrderViews(rows)
}
