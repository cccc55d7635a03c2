package commands_test

import (
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/complaint"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testClock = func() time.Time {
	return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
}

func TestCreateComplaintCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	caller := newCaller(t, account.RoleCustomer)
	cmd, err := commands.NewCreateComplaintCommand(
		nil, "DELIVERY", "parcel never arrived", "tracking shows no movement for a week",
		[]string{"https://cdn.example.com/screenshot.png"}, caller)
	require.NoError(t, err)

	complaintRepo := new(MockComplaintRepository)
	uow := new(MockComplaintUoW)

	var saved *complaint.Complaint
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ComplaintRepository").Return(complaintRepo).Once(),
		complaintRepo.On("Add", ctx, mock.AnythingOfType("*complaint.Complaint")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*complaint.Complaint)
			}).
			Return(nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComplaintUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateComplaintCommandHandler(factory, testClock)
	resp, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, complaint.StatusPending, resp.Status)
	assert.Equal(t, testClock(), resp.CreatedAt)
	assert.Equal(t, testClock().Add(24*time.Hour), resp.DueAt)

	require.NotNil(t, saved)
	assert.True(t, saved.ReporterID().IsEqual(caller.AccountID()))
	assert.Nil(t, saved.TargetID())
	messages := saved.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, complaint.SenderCustomer, messages[0].SenderKind())
	assert.Equal(t, "tracking shows no movement for a week", messages[0].Content())
	assert.Equal(t, []string{"https://cdn.example.com/screenshot.png"}, messages[0].Attachments())
	assert.Nil(t, saved.FirstResponseAt())

	complaintRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateComplaintCommandHandler_Handle_SellerOpeningMessageIsNotAResponse(t *testing.T) {
	ctx := t.Context()
	targetID := kernel.NewUUID()
	caller := newCaller(t, account.RoleSeller)
	cmd, err := commands.NewCreateComplaintCommand(
		&targetID, "PAYMENT", "refund never settled", "the refund bounced twice", nil, caller)
	require.NoError(t, err)

	complaintRepo := new(MockComplaintRepository)
	uow := new(MockComplaintUoW)

	var saved *complaint.Complaint
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ComplaintRepository").Return(complaintRepo).Once(),
		complaintRepo.On("Add", ctx, mock.AnythingOfType("*complaint.Complaint")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*complaint.Complaint)
			}).
			Return(nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComplaintUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateComplaintCommandHandler(factory, testClock)
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, saved)
	require.NotNil(t, saved.TargetID())
	assert.True(t, saved.TargetID().IsEqual(targetID))
	assert.Equal(t, complaint.SenderSeller, saved.Messages()[0].SenderKind())
	assert.Nil(t, saved.FirstResponseAt())
}

func TestCreateComplaintCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateComplaintCommand{} // not constructed properly

	factory := new(MockComplaintUoWFactory)
	handler := commands.NewCreateComplaintCommandHandler(factory, testClock)

	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateComplaintCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateComplaintCommand(t *testing.T) {
	caller := newCaller(t, account.RoleCustomer)

	t.Run("should reject unknown category before anything is loaded", func(t *testing.T) {
		_, err := commands.NewCreateComplaintCommand(
			nil, "SHIPPING", "subject", "content", nil, caller)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty opening message", func(t *testing.T) {
		_, err := commands.NewCreateComplaintCommand(
			nil, "DELIVERY", "subject", "", nil, caller)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid target ID", func(t *testing.T) {
		var invalidTarget kernel.UUID

		_, err := commands.NewCreateComplaintCommand(
			&invalidTarget, "DELIVERY", "subject", "content", nil, caller)

		require.Error(t, err)
	})

	t.Run("should copy attachments", func(t *testing.T) {
		attachments := []string{"a.png", "b.png"}

		cmd, err := commands.NewCreateComplaintCommand(
			nil, "DELIVERY", "subject", "content", attachments, caller)
		require.NoError(t, err)

		attachments[0] = "mutated.png"
		assert.Equal(t, []string{"a.png", "b.png"}, cmd.Attachments())
	})
}
