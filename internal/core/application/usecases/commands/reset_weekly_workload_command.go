package commands

import (
	"errors"

	"github.com/kossylee/fashionhive-backend/internal/pkg/guard"
)

var ErrResetWeeklyWorkloadCommandIsNotConstructed = errors.New(
	"ResetWeeklyWorkloadCommand must be created via NewResetWeeklyWorkloadCommand constructor",
)

// ResetWeeklyWorkloadCommand represents a request to zero every tailor's
// weekly workload. Carries no parameters; the constructor guard exists so the
// scheduled job goes through the same validation discipline as user commands.
type ResetWeeklyWorkloadCommand struct {
	guard guard.ConstructorGuard
}

// NewResetWeeklyWorkloadCommand creates a workload reset command.
func NewResetWeeklyWorkloadCommand() ResetWeeklyWorkloadCommand {
	return ResetWeeklyWorkloadCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ResetWeeklyWorkloadCommand) Validate() error {
	return c.guard.Validate(ErrResetWeeklyWorkloadCommandIsNotConstructed)
}
