package user_repository

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Repository --dir . --output ../../../../../mocks/user --outpkg mocks --with-expecter --filename UserRepository.go
type Repository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, update *model.UpdateUserDTO) (*model.User, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*model.UserWithPostCount, error)
}
