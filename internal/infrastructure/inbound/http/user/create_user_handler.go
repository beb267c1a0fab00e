package user_http

import (
	"context"
	"log/slog"
	"net/http"

	"blog-service/internal/application/validation"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/httpx"
)

type UserCreator interface {
	CreateUser(ctx context.Context, user *model.CreateUserDTO) (*model.User, error)
}

type CreateUserHandler struct {
	userService UserCreator
	validate    *validation.Validator
	log         ports.Logger
}

func NewCreateUserHandler(userService UserCreator, validate *validation.Validator, log ports.Logger) *CreateUserHandler {
	return &CreateUserHandler{userService: userService, validate: validate, log: log}
}

func (h *CreateUserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	body, err := httpx.ReadBody(w, r)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to create user")
		return
	}

	dto, err := h.validate.CreateUser(body)
	if err != nil {
		h.log.Debug("Request validation failed", slog.String("error", err.Error()))
		httpx.WriteError(w, h.log, err, "Failed to create user")
		return
	}

	user, err := h.userService.CreateUser(r.Context(), dto)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to create user")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, user)
}
