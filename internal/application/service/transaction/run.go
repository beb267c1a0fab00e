package transaction

import (
	"context"
	"log/slog"

	"blog-service/internal/custom_errors"
	ports "blog-service/internal/domain/ports/output"
)

// Run executes fn inside one store transaction. The transaction is committed
// when fn returns nil and rolled back otherwise. Errors returned by fn are
// passed through untouched.
func Run(ctx context.Context, uow ports.UnitOfWork, log ports.Logger, fn func(tx ports.Transaction) error) error {
	tx, err := uow.Begin(ctx)
	if err != nil {
		log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery.Wrap(err)
	}

	var txCommitted bool
	defer func() {
		if txCommitted {
			return
		}
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
			log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery.Wrap(err)
	}
	txCommitted = true
	return nil
}
