// Package reviewrepo provides data transfer objects and mapping functions
// for review persistence.
package reviewrepo

import (
	"time"

	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting review
// aggregates. The unique index on customer enforces one review per customer
// at the storage level.
type ReviewDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Rating:     aggregate.Rating(),
		Comment:    aggregate.Comment(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(id, customerID, dto.Rating, dto.Comment, dto.CreatedAt)
}
