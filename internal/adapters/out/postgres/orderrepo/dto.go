// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The three status axes are stored as separate text columns.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ShopID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Status         string    `gorm:"type:varchar(32);not null"`
	PaymentStatus  string    `gorm:"type:varchar(32);not null"`
	ShippingStatus string    `gorm:"type:varchar(32);not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		ShopID:         aggregate.ShopID().Bytes(),
		Status:         aggregate.Status().String(),
		PaymentStatus:  aggregate.PaymentStatus().String(),
		ShippingStatus: aggregate.ShippingStatus().String(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	shippingStatus, err := order.ShippingStatusFromString(dto.ShippingStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, shopID, status, paymentStatus, shippingStatus)
}
