// Package shoprepo provides data transfer objects and mapping functions for
// shop persistence. It implements the repository pattern for the shop
// aggregate, converting between domain entities and database rows.
package shoprepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shop"

	"github.com/google/uuid"
)

// ShopDTO represents the database structure for persisting shop aggregates.
type ShopDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerAccountID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Description        string    `gorm:"type:text"`
	VerificationStatus string    `gorm:"type:varchar(32);not null;index"`
}

// TableName specifies the database table name for shop entities.
func (ShopDTO) TableName() string {
	return "shops"
}

// fromDomain converts a shop domain aggregate to its database representation.
func fromDomain(aggregate *shop.Shop) ShopDTO {
	return ShopDTO{
		ID:                 aggregate.ID().Bytes(),
		OwnerAccountID:     aggregate.OwnerAccountID().Bytes(),
		Name:               aggregate.Name(),
		Description:        aggregate.Description(),
		VerificationStatus: aggregate.VerificationStatus().String(),
	}
}

// toDomain converts a database DTO to a shop domain aggregate.
func toDomain(dto ShopDTO) (*shop.Shop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerAccountID[:])
	if err != nil {
		return nil, err
	}

	status, err := shop.VerificationStatusFromString(dto.VerificationStatus)
	if err != nil {
		return nil, err
	}

	return shop.RestoreShop(id, ownerID, dto.Name, dto.Description, status)
}
