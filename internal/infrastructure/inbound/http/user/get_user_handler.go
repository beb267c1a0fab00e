package user_http

import (
	"context"
	"log/slog"
	"net/http"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/httpx"
)

type UserGetter interface {
	GetUserByID(ctx context.Context, id int64) (*model.UserDetailed, error)
}

type GetUserHandler struct {
	userService UserGetter
	log         ports.Logger
}

func NewGetUserHandler(userService UserGetter, log ports.Logger) *GetUserHandler {
	return &GetUserHandler{userService: userService, log: log}
}

func (h *GetUserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id", custom_errors.ErrInvalidUserID)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to fetch user")
		return
	}

	h.log.Debug("Received GetUser request", slog.Int64("user_id", id))
	user, err := h.userService.GetUserByID(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to fetch user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}
