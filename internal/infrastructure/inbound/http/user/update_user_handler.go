package user_http

import (
	"context"
	"log/slog"
	"net/http"

	"blog-service/internal/application/validation"
	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/httpx"
)

type UserUpdater interface {
	UpdateUser(ctx context.Context, id int64, update *model.UpdateUserDTO) (*model.User, error)
}

type UpdateUserHandler struct {
	userService UserUpdater
	validate    *validation.Validator
	log         ports.Logger
}

func NewUpdateUserHandler(userService UserUpdater, validate *validation.Validator, log ports.Logger) *UpdateUserHandler {
	return &UpdateUserHandler{userService: userService, validate: validate, log: log}
}

func (h *UpdateUserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id", custom_errors.ErrInvalidUserID)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to update user")
		return
	}

	body, err := httpx.ReadBody(w, r)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to update user")
		return
	}

	dto, err := h.validate.UpdateUser(body)
	if err != nil {
		h.log.Debug("Request validation failed", slog.Int64("user_id", id), slog.String("error", err.Error()))
		httpx.WriteError(w, h.log, err, "Failed to update user")
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), id, dto)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to update user")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}
