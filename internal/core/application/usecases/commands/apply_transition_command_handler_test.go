package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kossylee/fashionhive-backend/internal/core/application/usecases/commands"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/inventory"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/order"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/tailor"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/services"
	"github.com/kossylee/fashionhive-backend/internal/pkg/errs"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTransitionHandler(factory commands.UoWFactory) commands.ApplyTransitionCommandHandler {
	return commands.NewApplyTransitionCommandHandler(
		factory, services.NewCustomizationTypeResolver(), nil, testLogger(),
	)
}

func makeSuitOrder(t *testing.T, statuses ...order.Status) *order.Order {
	t.Helper()

	item, err := order.NewOrderItem("silk-fabric", 2, 150, map[string]string{"type": "suit"})
	require.NoError(t, err)

	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.OrderItem{item}, "5 Marina Road")
	require.NoError(t, err)

	for _, s := range statuses {
		require.NoError(t, ord.TransitionTo(s, ""))
	}
	return ord
}

func makeMaterial(t *testing.T, sku string, quantity int) *inventory.Material {
	t.Helper()

	material, err := inventory.NewMaterial(sku, "Silk fabric", "", quantity, 5, 20)
	require.NoError(t, err)
	return material
}

func makeSuitTailor(t *testing.T, workload int) *tailor.Tailor {
	t.Helper()

	worker, err := tailor.RestoreTailor(
		kernel.NewUUID(), "Amaka", []tailor.Specialty{tailor.Suits, tailor.Dresses}, workload, 40,
	)
	require.NoError(t, err)
	return worker
}

func TestApplyTransitionCommandHandler_Handle_PaidReservesInventory(t *testing.T) {
	ctx := context.Background()
	ord := makeSuitOrder(t)
	material := makeMaterial(t, "silk-fabric", 10)

	cmd, err := commands.NewApplyTransitionCommand(ord.ID(), order.Paid, "payment confirmed", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("UpdateStatusCAS", ctx, ord.ID(), order.Draft, order.Paid).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("GetBySKUForUpdate", ctx, "silk-fabric").Return(material, nil).Once(),
		inventoryRepo.On("Update", ctx, material).Return(nil).Once(),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Paid, ord.Status())
	assert.Equal(t, 8, material.Quantity())

	history := ord.StatusHistory()
	assert.Equal(t, "payment confirmed", history[len(history)-1].Note)

	orderRepo.AssertExpectations(t)
	inventoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestApplyTransitionCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := context.Background()
	ord := makeSuitOrder(t)
	material := makeMaterial(t, "silk-fabric", 1)

	cmd, err := commands.NewApplyTransitionCommand(ord.ID(), order.Paid, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("UpdateStatusCAS", ctx, ord.ID(), order.Draft, order.Paid).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("GetBySKUForUpdate", ctx, "silk-fabric").Return(material, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, inventory.ErrInsufficientStock)
	assert.Equal(t, 1, material.Quantity())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestApplyTransitionCommandHandler_Handle_ReserveLocksInSKUOrder(t *testing.T) {
	ctx := context.Background()

	zipper, err := order.NewOrderItem("zipper-brass", 4, 2, nil)
	require.NoError(t, err)
	cotton, err := order.NewOrderItem("cotton-twill", 1, 30, nil)
	require.NoError(t, err)

	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.OrderItem{zipper, cotton}, "5 Marina Road")
	require.NoError(t, err)

	cottonStock := makeMaterial(t, "cotton-twill", 10)
	zipperStock := makeMaterial(t, "zipper-brass", 10)

	cmd, err := commands.NewApplyTransitionCommand(ord.ID(), order.Paid, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("UpdateStatusCAS", ctx, ord.ID(), order.Draft, order.Paid).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("GetBySKUForUpdate", ctx, "cotton-twill").Return(cottonStock, nil).Once(),
		inventoryRepo.On("Update", ctx, cottonStock).Return(nil).Once(),
		inventoryRepo.On("GetBySKUForUpdate", ctx, "zipper-brass").Return(zipperStock, nil).Once(),
		inventoryRepo.On("Update", ctx, zipperStock).Return(nil).Once(),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 9, cottonStock.Quantity())
	assert.Equal(t, 6, zipperStock.Quantity())
	inventoryRepo.AssertExpectations(t)
}

func TestApplyTransitionCommandHandler_Handle_CASConflict(t *testing.T) {
	ctx := context.Background()
	ord := makeSuitOrder(t)

	cmd, err := commands.NewApplyTransitionCommand(ord.ID(), order.Paid, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("UpdateStatusCAS", ctx, ord.ID(), order.Draft, order.Paid).
			Return(errs.NewConcurrentUpdateConflictError("order")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConcurrentUpdateConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestApplyTransitionCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := context.Background()
	ord := makeSuitOrder(t)

	cmd, err := commands.NewApplyTransitionCommand(ord.ID(), order.Shipped, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.Draft, ord.Status())
	orderRepo.AssertNotCalled(t, "UpdateStatusCAS", ctx, ord.ID(), order.Draft, order.Shipped)
}

func TestApplyTransitionCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewApplyTransitionCommand(orderID, order.Paid, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNoOrderFound)
}

func TestApplyTransitionCommandHandler_Handle_InProductionAssignsTailor(t *testing.T) {
	ctx := context.Background()
	ord := makeSuitOrder(t, order.Paid)
	worker := makeSuitTailor(t, 3)

	cmd, err := commands.NewApplyTransitionCommand(ord.ID(), order.InProduction, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	tailorRepo := new(MockTailorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("UpdateStatusCAS", ctx, ord.ID(), order.Paid, order.InProduction).Return(nil).Once(),
		uow.On("TailorRepository").Return(tailorRepo).Once(),
		tailorRepo.On("GetAllAvailable", ctx).Return([]*tailor.Tailor{worker}, nil).Once(),
		tailorRepo.On("GetForUpdate", ctx, worker.ID()).Return(worker, nil).Once(),
		tailorRepo.On("Update", ctx, worker).Return(nil).Once(),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 4, worker.CurrentWorkload())
	require.NotNil(t, ord.Tailor())
	assert.True(t, ord.Tailor().IsEqual(worker.ID()))
}

func TestApplyTransitionCommandHandler_Handle_NoAvailableTailor(t *testing.T) {
	ctx := context.Background()
	ord := makeSuitOrder(t, order.Paid)

	cmd, err := commands.NewApplyTransitionCommand(ord.ID(), order.InProduction, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	tailorRepo := new(MockTailorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("UpdateStatusCAS", ctx, ord.ID(), order.Paid, order.InProduction).Return(nil).Once(),
		uow.On("TailorRepository").Return(tailorRepo).Once(),
		tailorRepo.On("GetAllAvailable", ctx).Return([]*tailor.Tailor{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrNoAvailableTailor)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestApplyTransitionCommandHandler_Handle_TailorReVerifyFails(t *testing.T) {
	ctx := context.Background()
	ord := makeSuitOrder(t, order.Paid)

	// The unlocked candidate list is stale: by the time the row is locked the
	// tailor has hit capacity.
	candidate := makeSuitTailor(t, 39)
	full, err := tailor.RestoreTailor(candidate.ID(), "Amaka", []tailor.Specialty{tailor.Suits}, 40, 40)
	require.NoError(t, err)

	cmd, err := commands.NewApplyTransitionCommand(ord.ID(), order.InProduction, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	tailorRepo := new(MockTailorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("UpdateStatusCAS", ctx, ord.ID(), order.Paid, order.InProduction).Return(nil).Once(),
		uow.On("TailorRepository").Return(tailorRepo).Once(),
		tailorRepo.On("GetAllAvailable", ctx).Return([]*tailor.Tailor{candidate}, nil).Once(),
		tailorRepo.On("GetForUpdate", ctx, candidate.ID()).Return(full, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrNoAvailableTailor)
	tailorRepo.AssertNotCalled(t, "Update", ctx, full)
}

func TestApplyTransitionCommandHandler_Handle_ShippedRecordsTrackingNumber(t *testing.T) {
	ctx := context.Background()
	ord := makeSuitOrder(t, order.Paid, order.InProduction, order.ReadyToShip)

	cmd, err := commands.NewApplyTransitionCommand(ord.ID(), order.Shipped, "", "TRK-20260831")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("UpdateStatusCAS", ctx, ord.ID(), order.ReadyToShip, order.Shipped).Return(nil).Once(),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "TRK-20260831", ord.TrackingNumber())
}

func TestApplyTransitionCommandHandler_Handle_ShippedGeneratesTrackingNumber(t *testing.T) {
	ctx := context.Background()
	ord := makeSuitOrder(t, order.Paid, order.InProduction, order.ReadyToShip)

	cmd, err := commands.NewApplyTransitionCommand(ord.ID(), order.Shipped, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("UpdateStatusCAS", ctx, ord.ID(), order.ReadyToShip, order.Shipped).Return(nil).Once(),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.NotEmpty(t, ord.TrackingNumber())
	assert.Contains(t, ord.TrackingNumber(), "TRK-")
}

func TestApplyTransitionCommandHandler_Handle_CancelReleasesResources(t *testing.T) {
	ctx := context.Background()
	ord := makeSuitOrder(t, order.Paid, order.InProduction)
	worker := makeSuitTailor(t, 4)
	require.NoError(t, ord.AssignTailor(worker.ID()))

	material := makeMaterial(t, "silk-fabric", 8)

	cmd, err := commands.NewApplyTransitionCommand(ord.ID(), order.Cancelled, "customer backed out", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	tailorRepo := new(MockTailorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("UpdateStatusCAS", ctx, ord.ID(), order.InProduction, order.Cancelled).Return(nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("GetBySKUForUpdate", ctx, "silk-fabric").Return(material, nil).Once(),
		inventoryRepo.On("Update", ctx, material).Return(nil).Once(),
		uow.On("TailorRepository").Return(tailorRepo).Once(),
		tailorRepo.On("GetForUpdate", ctx, worker.ID()).Return(worker, nil).Once(),
		tailorRepo.On("Update", ctx, worker).Return(nil).Once(),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, ord.Status())
	assert.Equal(t, 10, material.Quantity())
	assert.Equal(t, 3, worker.CurrentWorkload())
}

func TestApplyTransitionCommandHandler_Handle_CancelFromDraftReleasesNothing(t *testing.T) {
	ctx := context.Background()
	ord := makeSuitOrder(t)

	cmd, err := commands.NewApplyTransitionCommand(ord.ID(), order.Cancelled, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once(),
		orderRepo.On("UpdateStatusCAS", ctx, ord.ID(), order.Draft, order.Cancelled).Return(nil).Once(),
		orderRepo.On("Update", ctx, ord).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertNotCalled(t, "InventoryRepository")
	uow.AssertNotCalled(t, "TailorRepository")
}

func TestApplyTransitionCommandHandler_Handle_NotifiesAfterCommit(t *testing.T) {
	ctx := context.Background()
	ord := makeSuitOrder(t)
	material := makeMaterial(t, "silk-fabric", 10)

	cmd, err := commands.NewApplyTransitionCommand(ord.ID(), order.Paid, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	uow.On("InventoryRepository").Return(inventoryRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	orderRepo.On("UpdateStatusCAS", ctx, ord.ID(), order.Draft, order.Paid).Return(nil).Once()
	orderRepo.On("Update", ctx, ord).Return(nil).Once()
	inventoryRepo.On("GetBySKUForUpdate", ctx, "silk-fabric").Return(material, nil).Once()
	inventoryRepo.On("Update", ctx, material).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notified := make(chan struct{})
	notifier := new(MockOrderNotifier)
	notifier.On("NotifyOrderStatusChanged", mock.Anything, ord).
		Run(func(mock.Arguments) { close(notified) }).
		Return(nil).
		Once()

	handler := commands.NewApplyTransitionCommandHandler(
		factory, services.NewCustomizationTypeResolver(), notifier, testLogger(),
	)
	err = handler.Handle(ctx, cmd)
	require.NoError(t, err)

	select {
	case <-notified:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was not invoked after commit")
	}
	notifier.AssertExpectations(t)
}

func TestApplyTransitionCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.ApplyTransitionCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := newTransitionHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrApplyTransitionCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestApplyTransitionCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()
	ord := makeSuitOrder(t)

	cmd, err := commands.NewApplyTransitionCommand(ord.ID(), order.Paid, "", "")
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := newTransitionHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "begin error")
}
