package post_repository

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/post --outpkg mocks --with-expecter --filename PostRepository.go
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	GetDetailedByID(ctx context.Context, id int64) (*model.PostDetailed, error)
	GetByAuthor(ctx context.Context, authorID int64) ([]*model.Post, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
	DeleteByAuthor(ctx context.Context, authorID int64) (int64, error)
	ListDetailed(ctx context.Context) ([]*model.PostDetailed, error)
}
