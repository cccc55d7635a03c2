// Package http exposes the operations state machine over a REST surface.
// Handlers translate between JSON bodies and application commands/queries;
// all business rules live below the application layer.
package http

import (
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server wires HTTP routes to application use cases.
type Server struct {
	// Command handlers
	reviewShopHandler             commands.ReviewShopCommandHandler
	reviewShipperHandler          commands.ReviewShipperCommandHandler
	updateShipmentStatusHandler   commands.UpdateShipmentStatusCommandHandler
	createComplaintHandler        commands.CreateComplaintCommandHandler
	appendComplaintMessageHandler commands.AppendComplaintMessageCommandHandler
	updateComplaintStatusHandler  commands.UpdateComplaintStatusCommandHandler

	// Query handlers
	getComplaintHandler         queries.GetComplaintQueryHandler
	getOverdueComplaintsHandler queries.GetOverdueComplaintsQueryHandler
	getPendingReviewsHandler    queries.GetPendingReviewsQueryHandler

	clock func() time.Time
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	reviewShopHandler commands.ReviewShopCommandHandler,
	reviewShipperHandler commands.ReviewShipperCommandHandler,
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler,
	createComplaintHandler commands.CreateComplaintCommandHandler,
	appendComplaintMessageHandler commands.AppendComplaintMessageCommandHandler,
	updateComplaintStatusHandler commands.UpdateComplaintStatusCommandHandler,
	getComplaintHandler queries.GetComplaintQueryHandler,
	getOverdueComplaintsHandler queries.GetOverdueComplaintsQueryHandler,
	getPendingReviewsHandler queries.GetPendingReviewsQueryHandler,
	clock func() time.Time,
) *Server {
	return &Server{
		reviewShopHandler:             reviewShopHandler,
		reviewShipperHandler:          reviewShipperHandler,
		updateShipmentStatusHandler:   updateShipmentStatusHandler,
		createComplaintHandler:        createComplaintHandler,
		appendComplaintMessageHandler: appendComplaintMessageHandler,
		updateComplaintStatusHandler:  updateComplaintStatusHandler,
		getComplaintHandler:           getComplaintHandler,
		getOverdueComplaintsHandler:   getOverdueComplaintsHandler,
		getPendingReviewsHandler:      getPendingReviewsHandler,
		clock:                         clock,
	}
}

// RegisterRoutes attaches the API routes to the echo instance. Every route
// under /api/v1 requires a resolved caller identity.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1", CallerMiddleware())

	api.POST("/shops/:shopId/approve", s.ApproveShop)
	api.POST("/shops/:shopId/reject", s.RejectShop)
	api.POST("/shippers/:accountId/approve", s.ApproveShipper)
	api.POST("/shippers/:accountId/reject", s.RejectShipper)
	api.POST("/shipments/:shipmentId/status", s.UpdateShipmentStatus)
	api.POST("/complaints", s.CreateComplaint)
	api.POST("/complaints/:complaintId/messages", s.AppendComplaintMessage)
	api.POST("/complaints/:complaintId/status", s.UpdateComplaintStatus)
	api.GET("/complaints/overdue", s.GetOverdueComplaints)
	api.GET("/complaints/:complaintId", s.GetComplaint)
	api.GET("/reviews/pending", s.GetPendingReviews)
}

// ApproveShop handles POST /api/v1/shops/:shopId/approve.
func (s *Server) ApproveShop(ctx echo.Context) error {
	return s.reviewShop(ctx, commands.ReviewDecisionApprove)
}

// RejectShop handles POST /api/v1/shops/:shopId/reject.
func (s *Server) RejectShop(ctx echo.Context) error {
	return s.reviewShop(ctx, commands.ReviewDecisionReject)
}

func (s *Server) reviewShop(ctx echo.Context, decision commands.ReviewDecision) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	shopID, err := kernel.UUIDFromString(ctx.Param("shopId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReviewShopCommand(shopID, decision, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.reviewShopHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShopReviewResponse{
		ShopID:             resp.ShopID,
		VerificationStatus: resp.VerificationStatus.String(),
		OwnerRole:          resp.OwnerRole.String(),
	})
}

// ApproveShipper handles POST /api/v1/shippers/:accountId/approve.
func (s *Server) ApproveShipper(ctx echo.Context) error {
	return s.reviewShipper(ctx, commands.ReviewDecisionApprove)
}

// RejectShipper handles POST /api/v1/shippers/:accountId/reject.
func (s *Server) RejectShipper(ctx echo.Context) error {
	return s.reviewShipper(ctx, commands.ReviewDecisionReject)
}

func (s *Server) reviewShipper(ctx echo.Context, decision commands.ReviewDecision) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	accountID, err := kernel.UUIDFromString(ctx.Param("accountId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReviewShipperCommand(accountID, decision, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.reviewShipperHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShipperReviewResponse{
		AccountID:      resp.AccountID,
		Role:           resp.Role.String(),
		ApprovalStatus: resp.ApprovalStatus.String(),
	})
}

// UpdateShipmentStatus handles POST /api/v1/shipments/:shipmentId/status.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("shipmentId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateShipmentStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(shipmentID, req.Status, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.updateShipmentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ShipmentStatusResponse{
		ShipmentID:     resp.ShipmentID,
		ShipmentStatus: resp.ShipmentStatus.String(),
		OrderID:        resp.OrderID,
		OrderStatus:    resp.OrderStatus.String(),
		ShippingStatus: resp.ShippingStatus.String(),
	})
}

// CreateComplaint handles POST /api/v1/complaints.
func (s *Server) CreateComplaint(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	var req CreateComplaintRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var targetID *kernel.UUID
	if req.TargetAccountID != nil {
		target, err := kernel.UUIDFromString(*req.TargetAccountID)
		if err != nil {
			return writeError(ctx, err)
		}
		targetID = &target
	}

	cmd, err := commands.NewCreateComplaintCommand(
		targetID, req.Category, req.Subject, req.Content, req.Attachments, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.createComplaintHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ComplaintCreatedResponse{
		ComplaintID: resp.ComplaintID,
		Status:      resp.Status.String(),
		CreatedAt:   resp.CreatedAt,
		DueAt:       resp.DueAt,
	})
}

// AppendComplaintMessage handles POST /api/v1/complaints/:complaintId/messages.
// The sender kind is derived from the caller's role, never from the body.
func (s *Server) AppendComplaintMessage(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	complaintID, err := kernel.UUIDFromString(ctx.Param("complaintId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req AppendComplaintMessageRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAppendComplaintMessageCommand(complaintID, req.Content, req.Attachments, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.appendComplaintMessageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, MessageAppendedResponse{
		ComplaintID:     resp.ComplaintID,
		MessageID:       resp.MessageID,
		SenderKind:      resp.SenderKind.String(),
		SentAt:          resp.SentAt,
		FirstResponseAt: resp.FirstResponseAt,
	})
}

// UpdateComplaintStatus handles POST /api/v1/complaints/:complaintId/status.
func (s *Server) UpdateComplaintStatus(ctx echo.Context) error {
	caller, ok := callerFromContext(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	complaintID, err := kernel.UUIDFromString(ctx.Param("complaintId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateComplaintStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateComplaintStatusCommand(complaintID, req.Status, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.updateComplaintStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ComplaintStatusResponse{
		ComplaintID: resp.ComplaintID,
		Status:      resp.Status.String(),
		ResolvedAt:  resp.ResolvedAt,
		Overdue:     resp.Overdue,
	})
}

// GetComplaint handles GET /api/v1/complaints/:complaintId.
func (s *Server) GetComplaint(ctx echo.Context) error {
	complaintID, err := kernel.UUIDFromString(ctx.Param("complaintId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetComplaintQuery(complaintID)
	if err != nil {
		return writeError(ctx, err)
	}

	c, err := s.getComplaintHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	messages := make([]ComplaintMessage, len(c.Messages))
	for i, m := range c.Messages {
		messages[i] = ComplaintMessage{
			ID:          m.ID.String(),
			SenderID:    m.SenderID.String(),
			SenderKind:  m.SenderKind,
			Content:     m.Content,
			Attachments: m.Attachments,
			SentAt:      m.SentAt,
		}
	}

	var targetID *string
	if c.TargetID != nil {
		raw := c.TargetID.String()
		targetID = &raw
	}

	return ctx.JSON(http.StatusOK, Complaint{
		ID:                   c.ID.String(),
		ReporterID:           c.ReporterID.String(),
		TargetID:             targetID,
		Category:             c.Category,
		Subject:              c.Subject,
		Status:               c.Status,
		CreatedAt:            c.CreatedAt,
		DueAt:                c.DueAt,
		FirstResponseAt:      c.FirstResponseAt,
		ResolvedAt:           c.ResolvedAt,
		Overdue:              c.Overdue,
		FirstResponseMinutes: c.FirstResponseMinutes,
		ResolutionMinutes:    c.ResolutionMinutes,
		Messages:             messages,
	})
}

// GetOverdueComplaints handles GET /api/v1/complaints/overdue.
func (s *Server) GetOverdueComplaints(ctx echo.Context) error {
	query, err := queries.NewGetOverdueComplaintsQuery(s.clock())
	if err != nil {
		return writeError(ctx, err)
	}

	overdue, err := s.getOverdueComplaintsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OverdueComplaint, len(overdue))
	for i, c := range overdue {
		response[i] = OverdueComplaint{
			ID:         c.ID.String(),
			ReporterID: c.ReporterID.String(),
			Category:   c.Category,
			Subject:    c.Subject,
			Status:     c.Status,
			CreatedAt:  c.CreatedAt,
			DueAt:      c.DueAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPendingReviews handles GET /api/v1/reviews/pending.
func (s *Server) GetPendingReviews(ctx echo.Context) error {
	backlog, err := s.getPendingReviewsHandler.Handle(ctx.Request().Context(), queries.NewGetPendingReviewsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	shops := make([]PendingShop, len(backlog.Shops))
	for i, sh := range backlog.Shops {
		shops[i] = PendingShop{
			ShopID:         sh.ShopID.String(),
			OwnerAccountID: sh.OwnerAccountID.String(),
			Name:           sh.Name,
		}
	}

	shippers := make([]PendingShipper, len(backlog.Shippers))
	for i, sh := range backlog.Shippers {
		shippers[i] = PendingShipper{
			AccountID: sh.AccountID.String(),
			Name:      sh.Name,
			Email:     sh.Email,
		}
	}

	return ctx.JSON(http.StatusOK, PendingReviews{
		Shops:    shops,
		Shippers: shippers,
	})
}
