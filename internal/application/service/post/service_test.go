package post_service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	post_service "blog-service/internal/application/service/post"
	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	"blog-service/internal/infrastructure/logger"
	prometheus_metrics "blog-service/internal/infrastructure/outbound/metrics/prometheus"
	"blog-service/internal/infrastructure/outbound/repository/memory"
	"blog-service/mocks"
)

func ptr[T any](v T) *T {
	return &v
}

func setupPostService(t *testing.T) (*post_service.PostService, *model.User, *memory.Store) {
	t.Helper()
	log := logger.New("test")
	store := memory.NewStore()
	publisher := mocks.NewEventPublisher(t)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()

	author, err := store.UserRepository(log).Create(context.Background(), &model.User{Name: "Alice", Email: "alice@x.com"})
	require.NoError(t, err)

	service := post_service.NewPostService(
		store.PostRepository(log),
		memory.NewMemoryUOW(store, log),
		publisher,
		log,
		prometheus_metrics.NewPrometheusMetricsProvider(),
	)
	return service, author, store
}

func TestPostService_CreatePost(t *testing.T) {
	service, author, _ := setupPostService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		dto     *model.CreatePostDTO
		wantErr error
	}{
		{
			name: "success",
			dto:  &model.CreatePostDTO{Title: "Hello", Content: "World", AuthorID: author.ID},
		},
		{
			name:    "missing author",
			dto:     &model.CreatePostDTO{Title: "Hello", Content: "World", AuthorID: 42},
			wantErr: custom_errors.ErrAuthorNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.CreatePost(ctx, tt.dto)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, custom_errors.KindReferenceNotFound, custom_errors.KindOf(err))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Positive(t, got.ID)
			assert.Equal(t, &model.AuthorSummary{ID: author.ID, Name: "Alice", Email: "alice@x.com"}, got.Author)
		})
	}

	posts, err := service.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestPostService_UpdatePost(t *testing.T) {
	service, author, _ := setupPostService(t)
	ctx := context.Background()

	post, err := service.CreatePost(ctx, &model.CreatePostDTO{Title: "Hello", Content: "World", AuthorID: author.ID})
	require.NoError(t, err)

	t.Run("missing author leaves the post unchanged", func(t *testing.T) {
		_, err := service.UpdatePost(ctx, post.ID, &model.UpdatePostDTO{Title: ptr("Changed"), AuthorID: ptr(int64(42))})
		assert.ErrorIs(t, err, custom_errors.ErrAuthorNotFound)

		stored, err := service.GetPostByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Hello", stored.Title)
		assert.Equal(t, author.ID, stored.AuthorID)
	})

	t.Run("empty update", func(t *testing.T) {
		got, err := service.UpdatePost(ctx, post.ID, &model.UpdatePostDTO{})
		require.NoError(t, err)
		assert.Equal(t, post, got)
	})

	t.Run("partial update", func(t *testing.T) {
		got, err := service.UpdatePost(ctx, post.ID, &model.UpdatePostDTO{Content: ptr("Updated")})
		require.NoError(t, err)
		assert.Equal(t, "Hello", got.Title)
		assert.Equal(t, "Updated", got.Content)
		assert.Equal(t, post.CreatedAt, got.CreatedAt)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := service.UpdatePost(ctx, 999999, &model.UpdatePostDTO{Title: ptr("x")})
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})
}

func TestPostService_UpdatePost_ReassignsAuthor(t *testing.T) {
	service, author, store := setupPostService(t)
	ctx := context.Background()

	other, err := store.UserRepository(logger.New("test")).Create(ctx, &model.User{Name: "Bob", Email: "bob@x.com"})
	require.NoError(t, err)
	post, err := service.CreatePost(ctx, &model.CreatePostDTO{Title: "Hello", Content: "World", AuthorID: author.ID})
	require.NoError(t, err)

	got, err := service.UpdatePost(ctx, post.ID, &model.UpdatePostDTO{AuthorID: ptr(other.ID)})
	require.NoError(t, err)
	assert.Equal(t, other.ID, got.AuthorID)
	assert.Equal(t, "Bob", got.Author.Name)
}

func TestPostService_ListPosts_NewestFirst(t *testing.T) {
	service, author, _ := setupPostService(t)
	ctx := context.Background()

	var ids []int64
	for _, title := range []string{"t1", "t2", "t3"} {
		post, err := service.CreatePost(ctx, &model.CreatePostDTO{Title: title, Content: "c", AuthorID: author.ID})
		require.NoError(t, err)
		ids = append(ids, post.ID)
	}

	posts, err := service.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []int64{ids[2], ids[1], ids[0]}, []int64{posts[0].ID, posts[1].ID, posts[2].ID})
}

func TestPostService_DeletePost(t *testing.T) {
	service, author, _ := setupPostService(t)
	ctx := context.Background()

	post, err := service.CreatePost(ctx, &model.CreatePostDTO{Title: "Hello", Content: "World", AuthorID: author.ID})
	require.NoError(t, err)

	require.NoError(t, service.DeletePost(ctx, post.ID))
	assert.ErrorIs(t, service.DeletePost(ctx, post.ID), custom_errors.ErrPostNotFound)

	_, err = service.GetPostByID(ctx, post.ID)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
}
