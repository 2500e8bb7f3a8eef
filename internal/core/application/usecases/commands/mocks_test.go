package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/kossylee/fashionhive-backend/internal/core/application/usecases/commands"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/inventory"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/kernel"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/order"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/tailor"
	"github.com/kossylee/fashionhive-backend/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatusCAS(ctx context.Context, id kernel.UUID, from, to order.Status) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) MarkDeleted(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Add(ctx context.Context, material *inventory.Material) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *MockInventoryRepository) Update(ctx context.Context, material *inventory.Material) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}

func (m *MockInventoryRepository) GetBySKU(ctx context.Context, sku string) (*inventory.Material, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Material), args.Error(1)
}

func (m *MockInventoryRepository) GetBySKUForUpdate(ctx context.Context, sku string) (*inventory.Material, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Material), args.Error(1)
}

func (m *MockInventoryRepository) FindLowStock(ctx context.Context) ([]*inventory.Material, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Material), args.Error(1)
}

type MockTailorRepository struct{ mock.Mock }

func (m *MockTailorRepository) Add(ctx context.Context, t *tailor.Tailor) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTailorRepository) Update(ctx context.Context, t *tailor.Tailor) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTailorRepository) Get(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tailor.Tailor), args.Error(1)
}

func (m *MockTailorRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*tailor.Tailor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tailor.Tailor), args.Error(1)
}

func (m *MockTailorRepository) GetAllAvailable(ctx context.Context) ([]*tailor.Tailor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tailor.Tailor), args.Error(1)
}

func (m *MockTailorRepository) ResetAllWorkloads(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

func (m *MockUoW) TailorRepository() ports.TailorRepository {
	args := m.Called()
	return args.Get(0).(ports.TailorRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}

type MockTailorUoWFactory struct{ mock.Mock }

func (m *MockTailorUoWFactory) Create() commands.TailorUoW {
	args := m.Called()
	return args.Get(0).(commands.TailorUoW)
}

type MockOrderNotifier struct{ mock.Mock }

func (m *MockOrderNotifier) NotifyOrderStatusChanged(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
