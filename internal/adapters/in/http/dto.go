package http

import "time"

// Request and response bodies for the operations API. Statuses and categories
// travel as their uppercase literals; identifiers travel as UUID strings.

// UpdateShipmentStatusRequest is the body of POST /shipments/:shipmentId/status.
type UpdateShipmentStatusRequest struct {
	Status string `json:"status"`
}

// CreateComplaintRequest is the body of POST /complaints.
type CreateComplaintRequest struct {
	TargetAccountID *string  `json:"targetAccountId,omitempty"`
	Category        string   `json:"category"`
	Subject         string   `json:"subject"`
	Content         string   `json:"content"`
	Attachments     []string `json:"attachments,omitempty"`
}

// AppendComplaintMessageRequest is the body of POST /complaints/:complaintId/messages.
type AppendComplaintMessageRequest struct {
	Content     string   `json:"content"`
	Attachments []string `json:"attachments,omitempty"`
}

// UpdateComplaintStatusRequest is the body of POST /complaints/:complaintId/status.
type UpdateComplaintStatusRequest struct {
	Status string `json:"status"`
}

// ShopReviewResponse is returned by the shop approve/reject endpoints.
type ShopReviewResponse struct {
	ShopID             string `json:"shopId"`
	VerificationStatus string `json:"verificationStatus"`
	OwnerRole          string `json:"ownerRole"`
}

// ShipperReviewResponse is returned by the shipper approve/reject endpoints.
type ShipperReviewResponse struct {
	AccountID      string `json:"accountId"`
	Role           string `json:"role"`
	ApprovalStatus string `json:"approvalStatus"`
}

// ShipmentStatusResponse is returned by the shipment status endpoint with the
// applied status and the order fields the change cascaded into.
type ShipmentStatusResponse struct {
	ShipmentID     string `json:"shipmentId"`
	ShipmentStatus string `json:"shipmentStatus"`
	OrderID        string `json:"orderId"`
	OrderStatus    string `json:"orderStatus"`
	ShippingStatus string `json:"shippingStatus"`
}

// ComplaintCreatedResponse is returned when a complaint is filed.
type ComplaintCreatedResponse struct {
	ComplaintID string    `json:"complaintId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	DueAt       time.Time `json:"dueAt"`
}

// MessageAppendedResponse is returned when a message is appended to a thread.
type MessageAppendedResponse struct {
	ComplaintID     string     `json:"complaintId"`
	MessageID       string     `json:"messageId"`
	SenderKind      string     `json:"senderKind"`
	SentAt          time.Time  `json:"sentAt"`
	FirstResponseAt *time.Time `json:"firstResponseAt,omitempty"`
}

// ComplaintStatusResponse is returned by the complaint status endpoint.
type ComplaintStatusResponse struct {
	ComplaintID string     `json:"complaintId"`
	Status      string     `json:"status"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
	Overdue     bool       `json:"overdue"`
}

// Complaint is the read model returned by GET /complaints/:complaintId.
type Complaint struct {
	ID                   string             `json:"id"`
	ReporterID           string             `json:"reporterId"`
	TargetID             *string            `json:"targetId,omitempty"`
	Category             string             `json:"category"`
	Subject              string             `json:"subject"`
	Status               string             `json:"status"`
	CreatedAt            time.Time          `json:"createdAt"`
	DueAt                time.Time          `json:"dueAt"`
	FirstResponseAt      *time.Time         `json:"firstResponseAt,omitempty"`
	ResolvedAt           *time.Time         `json:"resolvedAt,omitempty"`
	Overdue              bool               `json:"overdue"`
	FirstResponseMinutes *float64           `json:"firstResponseMinutes,omitempty"`
	ResolutionMinutes    *float64           `json:"resolutionMinutes,omitempty"`
	Messages             []ComplaintMessage `json:"messages"`
}

// ComplaintMessage is one thread entry in the complaint read model.
type ComplaintMessage struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	SenderKind  string    `json:"senderKind"`
	Content     string    `json:"content"`
	Attachments []string  `json:"attachments,omitempty"`
	SentAt      time.Time `json:"sentAt"`
}

// OverdueComplaint is one entry of GET /complaints/overdue.
type OverdueComplaint struct {
	ID         string    `json:"id"`
	ReporterID string    `json:"reporterId"`
	Category   string    `json:"category"`
	Subject    string    `json:"subject"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	DueAt      time.Time `json:"dueAt"`
}

// PendingReviews is the admin backlog returned by GET /reviews/pending.
type PendingReviews struct {
	Shops    []PendingShop    `json:"shops"`
	Shippers []PendingShipper `json:"shippers"`
}

// PendingShop is a shop awaiting a verification decision.
type PendingShop struct {
	ShopID         string `json:"shopId"`
	OwnerAccountID string `json:"ownerAccountId"`
	Name           string `json:"name"`
}

// PendingShipper is an account awaiting a shipper approval decision.
type PendingShipper struct {
	AccountID string `json:"accountId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}
