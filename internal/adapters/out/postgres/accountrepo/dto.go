// Package accountrepo provides data transfer objects and mapping functions for
// account persistence. It implements the repository pattern for the account
// aggregate, converting between domain entities and database rows.
package accountrepo

import (
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account aggregates.
// Status enums are stored as their uppercase literals so the rows stay readable
// and the read-side queries can filter on them directly.
type AccountDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Email          string    `gorm:"type:varchar(255)"`
	Role           string    `gorm:"type:varchar(32);not null"`
	Status         string    `gorm:"type:varchar(32);not null"`
	ApprovalStatus string    `gorm:"type:varchar(32);not null;index"`
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account domain aggregate to its database representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Email:          aggregate.Email(),
		Role:           aggregate.Role().String(),
		Status:         aggregate.Status().String(),
		ApprovalStatus: aggregate.ApprovalStatus().String(),
	}
}

// toDomain converts a database DTO to an account domain aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	status, err := account.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	approval, err := account.ApprovalStatusFromString(dto.ApprovalStatus)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.Name, dto.Email, role, status, approval)
}
