package post_http

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

type PostUpdater interface {
	UpdatePost(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.PostDetailed, error)
}

type UpdatePostHandler struct {
	postService PostUpdater
	validate    *validation.Validator
	log         ports.Logger
}

func NewUpdatePostHandler(postService PostUpdater, validate *validation.Validator, log ports.Logger) *UpdatePostHandler {
	return &UpdatePostHandler{postService: postService, validate: validate, log: log}
}

func (h *UpdatePostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id", custom_errors.ErrInvalidPostID)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to update post")
		return
	}

	body, err := httpx.ReadBody(w, r)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to update post")
		return
	}

	dto, err := h.validate.UpdatePost(body)
	if err != nil {
		h.log.Debug("Request validation failed", slog.Int64("post_id", id), slog.String("error", err.Error()))
		httpx.WriteError(w, h.log, err, "Failed to update post")
		return
	}

	post, err := h.postService.UpdatePost(r.Context(), id, dto)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to update post")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, post)
}
