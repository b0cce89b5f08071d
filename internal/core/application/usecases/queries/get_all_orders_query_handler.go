package queries

import (
	"context"

	"milkround/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads the complete order history for the admin
// view.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for full history queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns all orders, newest placement first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + orderViewColumns + `
		FROM orders o
		JOIN accounts a ON a.id = o.customer_id
		ORDER BY o.created_at DESC
	`).Rows()
	if err != nil {
		return nil, errs.NewStoreUnavailableError("query all orders", err)
	}
	defer rows.Close()

	return scanOrderViews(rows)
}
