package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/BrandishEconomy/internal/domain"
	"github.com/osse101/BrandishEconomy/internal/logger"
)

const LogMsgRollbackFailed = "Failed to rollback transaction"

// SafeRollback is meant to be deferred right after BeginTx. Rolling back a
// committed unit of work is expected and stays silent; any other failure is
// logged since the deferred caller cannot return it.
func SafeRollback(ctx context.Context, tx Tx) {
	err := tx.Rollback(ctx)
	if err == nil || errors.Is(err, domain.ErrTxClosed) {
		return
	}
	logger.FromContext(ctx).Error(LogMsgRollbackFailed, "tx", fmt.Sprintf("%T", tx), "error", err)
}
