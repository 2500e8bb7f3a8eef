package commands

import (
	"context"

	"github.com/kossylee/fashionhive-backend/internal/core/domain/model/inventory"
)

// AddMaterialCommandHandler handles registration of inventory materials.
type AddMaterialCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewAddMaterialCommandHandler creates a handler for material registration.
func NewAddMaterialCommandHandler(uowFactory InventoryUoWFactory) AddMaterialCommandHandler {
	return AddMaterialCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the material registration command.
// A duplicate SKU surfaces as errs.ErrDuplicateKey from the repository's
// unique constraint translation.
func (h AddMaterialCommandHandler) Handle(ctx context.Context, cmd AddMaterialCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	material, err := inventory.NewMaterial(
		cmd.SKU(), cmd.Name(), cmd.Description(),
		cmd.Quantity(), cmd.ReorderPoint(), cmd.UnitPrice(),
	)
	if err != nil {
		return err
	}

	if err = uow.InventoryRepository().Add(ctx, material); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
