package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	"blog-service/internal/infrastructure/logger"
	"blog-service/internal/infrastructure/outbound/repository/memory"
)

func ptr[T any](v T) *T {
	return &v
}

func setupStoreTest(t *testing.T) (*memory.Store, *logger.Logger) {
	t.Helper()
	return memory.NewStore(), logger.New("test")
}

func TestUserRepository_Create(t *testing.T) {
	store, log := setupStoreTest(t)
	repo := store.UserRepository(log)
	ctx := context.Background()

	tests := []struct {
		name    string
		user    *model.User
		wantErr error
	}{
		{
			name: "successful creation",
			user: &model.User{Name: "Alice", Email: "alice@example.com"},
		},
		{
			name:    "duplicate email",
			user:    &model.User{Name: "Other Alice", Email: "alice@example.com"},
			wantErr: custom_errors.ErrEmailExists,
		},
		{
			name: "second user",
			user: &model.User{Name: "Bob", Email: "bob@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Create(ctx, tt.user)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Positive(t, got.ID)
			assert.Equal(t, tt.user.Email, got.Email)
			assert.False(t, got.CreatedAt.IsZero())
			assert.Equal(t, got.CreatedAt, got.UpdatedAt)
		})
	}
}

func TestUserRepository_UpdateAndLookup(t *testing.T) {
	store, log := setupStoreTest(t)
	repo := store.UserRepository(log)
	ctx := context.Background()

	alice, err := repo.Create(ctx, &model.User{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &model.User{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	_, err = repo.Update(ctx, alice.ID, &model.UpdateUserDTO{Email: ptr("bob@example.com")})
	assert.ErrorIs(t, err, custom_errors.ErrEmailExists)

	unchanged, err := repo.Update(ctx, alice.ID, &model.UpdateUserDTO{})
	require.NoError(t, err)
	assert.Equal(t, alice, unchanged)

	updated, err := repo.Update(ctx, alice.ID, &model.UpdateUserDTO{Name: ptr("Alice B.")})
	require.NoError(t, err)
	assert.Equal(t, "Alice B.", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, alice.CreatedAt, updated.CreatedAt)

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byEmail.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)

	_, err = repo.Update(ctx, 999, &model.UpdateUserDTO{Name: ptr("Ghost")})
	assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)

	exists, err := repo.Exists(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_DeleteRestrictedByPosts(t *testing.T) {
	store, log := setupStoreTest(t)
	users := store.UserRepository(log)
	posts := store.PostRepository(log)
	ctx := context.Background()

	author, err := users.Create(ctx, &model.User{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	_, err = posts.Create(ctx, &model.Post{Title: "t", Content: "c", AuthorID: author.ID})
	require.NoError(t, err)

	err = users.Delete(ctx, author.ID)
	assert.ErrorIs(t, err, custom_errors.ErrUserHasPosts)

	deleted, err := posts.DeleteByAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	require.NoError(t, users.Delete(ctx, author.ID))
	assert.ErrorIs(t, users.Delete(ctx, author.ID), custom_errors.ErrUserNotFound)
}

func TestUserRepository_ListWithPostCount(t *testing.T) {
	store, log := setupStoreTest(t)
	users := store.UserRepository(log)
	posts := store.PostRepository(log)
	ctx := context.Background()

	first, err := users.Create(ctx, &model.User{Name: "First", Email: "first@example.com"})
	require.NoError(t, err)
	second, err := users.Create(ctx, &model.User{Name: "Second", Email: "second@example.com"})
	require.NoError(t, err)
	for range 2 {
		_, err = posts.Create(ctx, &model.Post{Title: "t", Content: "c", AuthorID: first.ID})
		require.NoError(t, err)
	}

	list, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, int64(0), list[0].PostCount)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, int64(2), list[1].PostCount)
}

func TestPostRepository_CRUD(t *testing.T) {
	store, log := setupStoreTest(t)
	users := store.UserRepository(log)
	repo := store.PostRepository(log)
	ctx := context.Background()

	author, err := users.Create(ctx, &model.User{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &model.Post{Title: "t", Content: "c", AuthorID: 42})
	assert.ErrorIs(t, err, custom_errors.ErrAuthorNotFound)
	list, err := repo.ListDetailed(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	post, err := repo.Create(ctx, &model.Post{Title: "Hello", Content: "World", AuthorID: author.ID})
	require.NoError(t, err)

	detailed, err := repo.GetDetailedByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, &model.AuthorSummary{ID: author.ID, Name: "Alice", Email: "alice@example.com"}, detailed.Author)

	_, err = repo.Update(ctx, post.ID, &model.UpdatePostDTO{Title: ptr("New"), AuthorID: ptr(int64(42))})
	assert.ErrorIs(t, err, custom_errors.ErrAuthorNotFound)
	stored, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", stored.Title)

	updated, err := repo.Update(ctx, post.ID, &model.UpdatePostDTO{Content: ptr("Updated")})
	require.NoError(t, err)
	assert.Equal(t, "Hello", updated.Title)
	assert.Equal(t, "Updated", updated.Content)

	require.NoError(t, repo.Delete(ctx, post.ID))
	assert.ErrorIs(t, repo.Delete(ctx, post.ID), custom_errors.ErrPostNotFound)
	_, err = repo.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
}

func TestPostRepository_ListNewestFirst(t *testing.T) {
	store, log := setupStoreTest(t)
	users := store.UserRepository(log)
	repo := store.PostRepository(log)
	ctx := context.Background()

	author, err := users.Create(ctx, &model.User{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	var ids []int64
	for _, title := range []string{"t1", "t2", "t3"} {
		post, err := repo.Create(ctx, &model.Post{Title: title, Content: "c", AuthorID: author.ID})
		require.NoError(t, err)
		ids = append(ids, post.ID)
	}

	list, err := repo.ListDetailed(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{ids[2], ids[1], ids[0]}, []int64{list[0].ID, list[1].ID, list[2].ID})

	byAuthor, err := repo.GetByAuthor(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, byAuthor, 3)
	assert.Equal(t, "t3", byAuthor[0].Title)
}

func TestUnitOfWork_RollbackRestoresState(t *testing.T) {
	store, log := setupStoreTest(t)
	uow := memory.NewMemoryUOW(store, log)
	ctx := context.Background()

	tx, err := uow.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.UserRepository().Create(ctx, &model.User{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	list, err := store.UserRepository(log).List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	tx, err = uow.Begin(ctx)
	require.NoError(t, err)
	created, err := tx.UserRepository().Create(ctx, &model.User{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
	require.NoError(t, tx.Rollback(ctx))

	got, err := store.UserRepository(log).GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.Name)
}
