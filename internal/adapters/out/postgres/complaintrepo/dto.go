// Package complaintrepo provides data transfer objects and mapping functions
// for complaint persistence. This package implements the repository pattern for
// the complaint aggregate, handling the conversion between the aggregate with
// its message thread and the relational tables backing it.
package complaintrepo

import (
	"time"

	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ComplaintDTO represents the database structure for persisting complaint
// aggregates. The derived overdue view is deliberately absent: only the raw
// timestamps are stored and the flag is recomputed on every read.
type ComplaintDTO struct {
	ID              uuid.UUID             `gorm:"type:uuid;primaryKey"`
	ReporterID      uuid.UUID             `gorm:"type:uuid;not null;index"`
	TargetID        *uuid.UUID            `gorm:"type:uuid;index"`
	Category        string                `gorm:"type:varchar(32);not null"`
	Subject         string                `gorm:"type:varchar(512);not null"`
	Status          string                `gorm:"type:varchar(32);not null"`
	CreatedAt       time.Time             `gorm:"not null"`
	DueAt           time.Time             `gorm:"not null;index"`
	FirstResponseAt *time.Time
	ResolvedAt      *time.Time            `gorm:"index"`
	Messages        []ComplaintMessageDTO `gorm:"foreignKey:ComplaintID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for complaint entities.
func (ComplaintDTO) TableName() string {
	return "complaints"
}

// ComplaintMessageDTO represents one thread entry. Attachments are stored as
// a JSON document in a single column; the thread is append-only so rows are
// only ever inserted.
type ComplaintMessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ComplaintID uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null"`
	SenderKind  string    `gorm:"type:varchar(32);not null"`
	Content     string    `gorm:"type:text;not null"`
	Attachments []string  `gorm:"serializer:json;type:jsonb"`
	SentAt      time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for complaint message entities.
func (ComplaintMessageDTO) TableName() string {
	return "complaint_messages"
}

// fromDomain converts a complaint domain aggregate to its database
// representation, including the full message thread.
func fromDomain(aggregate *complaint.Complaint) ComplaintDTO {
	complaintID := aggregate.ID().Bytes()

	var targetID *uuid.UUID
	if aggregate.TargetID() != nil {
		raw := aggregate.TargetID().Bytes()
		targetID = &raw
	}

	domainMessages := aggregate.Messages()
	messages := make([]ComplaintMessageDTO, 0, len(domainMessages))
	for _, m := range domainMessages {
		messages = append(messages, ComplaintMessageDTO{
			ID:          m.ID().Bytes(),
			ComplaintID: complaintID,
			SenderID:    m.SenderID().Bytes(),
			SenderKind:  m.SenderKind().String(),
			Content:     m.Content(),
			Attachments: m.Attachments(),
			SentAt:      m.SentAt(),
		})
	}

	return ComplaintDTO{
		ID:              complaintID,
		ReporterID:      aggregate.ReporterID().Bytes(),
		TargetID:        targetID,
		Category:        aggregate.Category().String(),
		Subject:         aggregate.Subject(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		DueAt:           aggregate.DueAt(),
		FirstResponseAt: aggregate.FirstResponseAt(),
		ResolvedAt:      aggregate.ResolvedAt(),
		Messages:        messages,
	}
}

// toDomain converts a database DTO to a complaint domain aggregate.
// Messages must be preloaded in thread order.
func toDomain(dto ComplaintDTO) (*complaint.Complaint, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	reporterID, err := kernel.UUIDFromBytes(dto.ReporterID[:])
	if err != nil {
		return nil, err
	}

	var targetID *kernel.UUID
	if dto.TargetID != nil {
		tID, targetErr := kernel.UUIDFromBytes((*dto.TargetID)[:])
		if targetErr != nil {
			return nil, targetErr
		}
		targetID = &tID
	}

	category, err := complaint.CategoryFromString(dto.Category)
	if err != nil {
		return nil, err
	}

	status, err := complaint.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	messages := make([]complaint.Message, 0, len(dto.Messages))
	for _, mDto := range dto.Messages {
		m, msgErr := messageToDomain(mDto)
		if msgErr != nil {
			return nil, msgErr
		}
		messages = append(messages, m)
	}

	return complaint.RestoreComplaint(
		id, reporterID, targetID,
		category, dto.Subject, status,
		dto.CreatedAt, dto.DueAt,
		dto.FirstResponseAt, dto.ResolvedAt,
		messages,
	)
}

// messageToDomain converts a message DTO to its domain value object.
func messageToDomain(dto ComplaintMessageDTO) (complaint.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return complaint.Message{}, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return complaint.Message{}, err
	}

	senderKind, err := complaint.SenderKindFromString(dto.SenderKind)
	if err != nil {
		return complaint.Message{}, err
	}

	return complaint.NewMessage(id, senderID, senderKind, dto.Content, dto.Attachments, dto.SentAt)
}
