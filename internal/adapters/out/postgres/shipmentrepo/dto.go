// Package shipmentrepo provides data transfer objects and mapping functions for
// shipment persistence. It implements the repository pattern for the shipment
// aggregate, converting between domain entities and database rows.
package shipmentrepo

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The sender and recipient snapshots are embedded with column
// prefixes so the waybill stays a single row.
type ShipmentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID          uuid.UUID `gorm:"type:uuid;not null;index"`
	CarrierAccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	TrackingNumber   string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Sender           PartyDTO  `gorm:"embedded;embeddedPrefix:sender_"`
	Recipient        PartyDTO  `gorm:"embedded;embeddedPrefix:recipient_"`
	Status           string    `gorm:"type:varchar(32);not null"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// PartyDTO represents an embedded sender or recipient snapshot within the
// shipment table.
type PartyDTO struct {
	Name    string `gorm:"type:varchar(255);not null"`
	Address string `gorm:"type:varchar(512);not null"`
	Phone   string `gorm:"type:varchar(32)"`
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		CarrierAccountID: aggregate.CarrierAccountID().Bytes(),
		TrackingNumber:   aggregate.TrackingNumber(),
		Sender:           partyFromDomain(aggregate.Sender()),
		Recipient:        partyFromDomain(aggregate.Recipient()),
		Status:           aggregate.Status().String(),
	}
}

func partyFromDomain(p shipment.Party) PartyDTO {
	return PartyDTO{
		Name:    p.Name(),
		Address: p.Address(),
		Phone:   p.Phone(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	carrierID, err := kernel.UUIDFromBytes(dto.CarrierAccountID[:])
	if err != nil {
		return nil, err
	}

	sender, err := shipment.NewParty(dto.Sender.Name, dto.Sender.Address, dto.Sender.Phone)
	if err != nil {
		return nil, err
	}

	recipient, err := shipment.NewParty(dto.Recipient.Name, dto.Recipient.Address, dto.Recipient.Phone)
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, orderID, carrierID, dto.TrackingNumber, sender, recipient, status)
}
