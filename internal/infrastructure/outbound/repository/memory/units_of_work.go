package memory

import (
	"context"
	"log/slog"
	"sync"

	ports "blog-service/internal/domain/ports/output"
	post_repository "blog-service/internal/domain/ports/output/post"
	user_repository "blog-service/internal/domain/ports/output/user"
)

type MemoryUnitOfWork struct {
	store *Store
	log   ports.Logger
}

func NewMemoryUOW(store *Store, log ports.Logger) ports.UnitOfWork {
	return &MemoryUnitOfWork{store: store, log: log}
}

// Begin takes the store's write lock for the lifetime of the transaction.
func (uow *MemoryUnitOfWork) Begin(ctx context.Context) (ports.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	uow.store.mu.Lock()
	return &MemoryTransaction{
		store:    uow.store,
		log:      uow.log,
		snapshot: uow.store.snapshot(),
	}, nil
}

type MemoryTransaction struct {
	store    *Store
	log      ports.Logger
	snapshot snapshot
	once     sync.Once
}

func (t *MemoryTransaction) Commit(ctx context.Context) error {
	t.once.Do(func() {
		t.store.mu.Unlock()
	})
	return nil
}

func (t *MemoryTransaction) Rollback(ctx context.Context) error {
	t.once.Do(func() {
		t.store.restore(t.snapshot)
		t.log.Debug("Memory transaction rolled back", slog.Int("users", len(t.store.users)), slog.Int("posts", len(t.store.posts)))
		t.store.mu.Unlock()
	})
	return nil
}

func (t *MemoryTransaction) UserRepository() user_repository.Repository {
	return &UserRepository{store: t.store, log: t.log, locker: held{}}
}

func (t *MemoryTransaction) PostRepository() post_repository.Repository {
	return &PostRepository{store: t.store, log: t.log, locker: held{}}
}
