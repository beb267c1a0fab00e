package user_http

import (
	"net/http"

	"blog-service/internal/application/validation"
	ports "blog-service/internal/domain/ports/output"
	user_service "blog-service/internal/domain/ports/input/user"
)

type UserAPI struct {
	listUsersHandler  *ListUsersHandler
	getUserHandler    *GetUserHandler
	createUserHandler *CreateUserHandler
	updateUserHandler *UpdateUserHandler
	deleteUserHandler *DeleteUserHandler
}

func NewUserAPI(userService user_service.Service, validate *validation.Validator, log ports.Logger) *UserAPI {
	return &UserAPI{
		listUsersHandler:  NewListUsersHandler(userService, log),
		getUserHandler:    NewGetUserHandler(userService, log),
		createUserHandler: NewCreateUserHandler(userService, validate, log),
		updateUserHandler: NewUpdateUserHandler(userService, validate, log),
		deleteUserHandler: NewDeleteUserHandler(userService, log),
	}
}

func (a *UserAPI) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/users", a.listUsersHandler.ListUsers)
	mux.HandleFunc("GET /api/users/{id}", a.getUserHandler.GetUser)
	mux.HandleFunc("POST /api/users", a.createUserHandler.CreateUser)
	mux.HandleFunc("PUT /api/users/{id}", a.updateUserHandler.UpdateUser)
	mux.HandleFunc("DELETE /api/users/{id}", a.deleteUserHandler.DeleteUser)
}
