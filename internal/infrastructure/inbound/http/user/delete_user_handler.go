package user_http

import (
	"context"
	"net/http"

	"blog-service/internal/custom_errors"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/httpx"
)

type UserDeleter interface {
	DeleteUser(ctx context.Context, id int64) error
}

type DeleteUserHandler struct {
	userService UserDeleter
	log         ports.Logger
}

func NewDeleteUserHandler(userService UserDeleter, log ports.Logger) *DeleteUserHandler {
	return &DeleteUserHandler{userService: userService, log: log}
}

func (h *DeleteUserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id", custom_errors.ErrInvalidUserID)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to delete user")
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to delete user")
		return
	}
	httpx.WriteNoContent(w)
}
