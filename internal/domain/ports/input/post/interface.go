package post_service

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/post --outpkg mocks --with-expecter --filename PostService.go
type Service interface {
	ListPosts(ctx context.Context) ([]*model.PostDetailed, error)
	GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error)
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error)
	UpdatePost(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.PostDetailed, error)
	DeletePost(ctx context.Context, id int64) error
}
