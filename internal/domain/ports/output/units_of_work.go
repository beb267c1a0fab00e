package ports

import (
	"context"

	post_repository "blog-service/internal/domain/ports/output/post"
	user_repository "blog-service/internal/domain/ports/output/user"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename UnitsOfWork.go
type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Transaction hands out repositories bound to one store transaction.
// Rollback after Commit is a no-op.
//
//go:generate mockery --name Transaction --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename Transaction.go
type Transaction interface {
	UserRepository() user_repository.Repository
	PostRepository() post_repository.Repository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
