package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/kossylee/fashionhive-backend/internal/adapters/out/kafka"
	"github.com/kossylee/fashionhive-backend/internal/adapters/out/postgres"
	"github.com/kossylee/fashionhive-backend/internal/core/application/usecases/commands"
	"github.com/kossylee/fashionhive-backend/internal/core/application/usecases/queries"
	"github.com/kossylee/fashionhive-backend/internal/core/domain/services"
	"github.com/kossylee/fashionhive-backend/internal/core/ports"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.OrderNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   kafka.NewStatusNotifier([]string{config.KafkaHost}, config.KafkaOrderStatusChangedTopic),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyTransitionCommandHandler() commands.ApplyTransitionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyTransitionCommandHandler(
		f,
		services.NewCustomizationTypeResolver(),
		c.notifier,
		c.logger,
	)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddMaterialCommandHandler() commands.AddMaterialCommandHandler {
	var f commands.InventoryUoWFactory = FuncInventoryUoWFactory(func() commands.InventoryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddMaterialCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTailorCommandHandler() commands.CreateTailorCommandHandler {
	var f commands.TailorUoWFactory = FuncTailorUoWFactory(func() commands.TailorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTailorCommandHandler(f)
}

func (c *CompositionRoot) CreateResetWeeklyWorkloadCommandHandler() commands.ResetWeeklyWorkloadCommandHandler {
	var f commands.TailorUoWFactory = FuncTailorUoWFactory(func() commands.TailorUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResetWeeklyWorkloadCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockMaterialsQueryHandler() queries.GetLowStockMaterialsQueryHandler {
	return queries.NewGetLowStockMaterialsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInventoryUoWFactory func() commands.InventoryUoW

func (f FuncInventoryUoWFactory) Create() commands.InventoryUoW {
	return f()
}

type FuncTailorUoWFactory func() commands.TailorUoW

func (f FuncTailorUoWFactory) Create() commands.TailorUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
