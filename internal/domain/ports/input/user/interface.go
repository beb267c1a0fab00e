package user_service

import (
	"context"

	model "blog-service/internal/domain/models"
)

//go:generate mockery --name Service --dir . --output ../../../../../mocks/user --outpkg mocks --with-expecter --filename UserService.go
type Service interface {
	ListUsers(ctx context.Context) ([]*model.UserWithPostCount, error)
	GetUserByID(ctx context.Context, id int64) (*model.UserDetailed, error)
	CreateUser(ctx context.Context, user *model.CreateUserDTO) (*model.User, error)
	UpdateUser(ctx context.Context, id int64, update *model.UpdateUserDTO) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
