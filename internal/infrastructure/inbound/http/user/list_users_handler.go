package user_http

import (
	"context"
	"net/http"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/httpx"
)

type UserLister interface {
	ListUsers(ctx context.Context) ([]*model.UserWithPostCount, error)
}

type ListUsersHandler struct {
	userService UserLister
	log         ports.Logger
}

func NewListUsersHandler(userService UserLister, log ports.Logger) *ListUsersHandler {
	return &ListUsersHandler{userService: userService, log: log}
}

func (h *ListUsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to fetch users")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}
