// Package accountrepo provides data transfer objects and mapping functions
// for account persistence.
package accountrepo

import (
	"time"

	"milkround/internal/core/domain/model/account"
	"milkround/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account
// aggregates. The unique index on email enforces one account per address at
// the storage level.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Phone        string
	Hall         string
	Room         string
	PasswordHash string
	Role         int
	CreatedAt    time.Time
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		Phone:        aggregate.Phone(),
		Hall:         aggregate.Hall(),
		Room:         aggregate.Room(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         int(aggregate.Role()),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		dto.Hall,
		dto.Room,
		dto.PasswordHash,
		account.Role(dto.Role),
		dto.CreatedAt,
	)
}
