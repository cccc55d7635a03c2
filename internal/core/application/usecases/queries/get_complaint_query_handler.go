package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetComplaintQueryHandler retrieves a single complaint with its thread.
//
// The SLA view is computed here, against the handler's clock: a complaint is
// overdue when it is unresolved and the deadline has passed. Nothing derived
// is read back from storage.
type GetComplaintQueryHandler struct {
	db    *gorm.DB
	clock func() time.Time
}

// NewGetComplaintQueryHandler creates a handler for single-complaint reads.
// clock supplies the instant overdue is evaluated at; pass time.Now in
// production wiring.
func NewGetComplaintQueryHandler(db *gorm.DB, clock func() time.Time) GetComplaintQueryHandler {
	return GetComplaintQueryHandler{db: db, clock: clock}
}

// Handle fetches the complaint and its messages in thread order.
func (h GetComplaintQueryHandler) Handle(
	ctx context.Context, query GetComplaintQuery,
) (GetComplaintQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetComplaintQueryResponse{}, err
	}

	var resp GetComplaintQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reporter_id,
			target_id,
			category,
			subject,
			status,
			created_at,
			due_at,
			first_response_at,
			resolved_at
		FROM complaints
		WHERE id = ?
	`, query.ComplaintID().String()).Row()

	var (
		id, reporterID  uuid.UUID
		targetID        uuid.NullUUID
		firstResponseAt sql.NullTime
		resolvedAt      sql.NullTime
	)

	err := row.Scan(
		&id,
		&reporterID,
		&targetID,
		&resp.Category,
		&resp.Subject,
		&resp.Status,
		&resp.CreatedAt,
		&resp.DueAt,
		&firstResponseAt,
		&resolvedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetComplaintQueryResponse{}, errs.NewObjectNotFoundError(
			"complaintId", query.ComplaintID())
	}
	if err != nil {
		return GetComplaintQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetComplaintQueryResponse{}, err
	}
	if resp.ReporterID, err = kernel.UUIDFromBytes(reporterID[:]); err != nil {
		return GetComplaintQueryResponse{}, err
	}
	if targetID.Valid {
		target, idErr := kernel.UUIDFromBytes(targetID.UUID[:])
		if idErr != nil {
			return GetComplaintQueryResponse{}, idErr
		}
		resp.TargetID = &target
	}
	if firstResponseAt.Valid {
		t := firstResponseAt.Time
		resp.FirstResponseAt = &t
	}
	if resolvedAt.Valid {
		t := resolvedAt.Time
		resp.ResolvedAt = &t
	}

	if resp.Messages, err = h.loadMessages(ctx, query.ComplaintID()); err != nil {
		return GetComplaintQueryResponse{}, err
	}

	applySLAView(&resp, h.clock())
	return resp, nil
}

func (h GetComplaintQueryHandler) loadMessages(
	ctx context.Context, complaintID kernel.UUID,
) ([]ComplaintMessageResponse, error) {
	messages := make([]ComplaintMessageResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sender_id,
			sender_kind,
			content,
			attachments,
			sent_at
		FROM complaint_messages
		WHERE complaint_id = ?
		ORDER BY sent_at, id
	`, complaintID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var m ComplaintMessageResponse
		var id, senderID uuid.UUID
		var attachments attachmentList

		if err = rows.Scan(&id, &senderID, &m.SenderKind, &m.Content, &attachments, &m.SentAt); err != nil {
			return nil, err
		}

		if m.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if m.SenderID, err = kernel.UUIDFromBytes(senderID[:]); err != nil {
			return nil, err
		}
		m.Attachments = attachments
		messages = append(messages, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

// applySLAView computes the derived SLA fields against the given instant.
func applySLAView(resp *GetComplaintQueryResponse, now time.Time) {
	resp.Overdue = resp.ResolvedAt == nil && now.After(resp.DueAt)

	if resp.FirstResponseAt != nil {
		minutes := resp.FirstResponseAt.Sub(resp.CreatedAt).Minutes()
		resp.FirstResponseMinutes = &minutes
	}
	if resp.ResolvedAt != nil {
		minutes := resp.ResolvedAt.Sub(resp.CreatedAt).Minutes()
		resp.ResolutionMinutes = &minutes
	}
}
