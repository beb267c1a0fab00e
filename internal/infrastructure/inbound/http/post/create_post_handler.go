package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"blog-service/internal/application/validation"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/httpx"
)

type PostCreator interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validation.Validator
	log         ports.Logger
}

func NewCreatePostHandler(postService PostCreator, validate *validation.Validator, log ports.Logger) *CreatePostHandler {
	return &CreatePostHandler{postService: postService, validate: validate, log: log}
}

func (h *CreatePostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	body, err := httpx.ReadBody(w, r)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to create post")
		return
	}

	dto, err := h.validate.CreatePost(body)
	if err != nil {
		h.log.Debug("Request validation failed", slog.String("error", err.Error()))
		httpx.WriteError(w, h.log, err, "Failed to create post")
		return
	}

	post, err := h.postService.CreatePost(r.Context(), dto)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to create post")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, post)
}
