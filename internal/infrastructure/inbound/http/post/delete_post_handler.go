package post_http

import (
	"context"
	"net/http"

	"blog-service/internal/custom_errors"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/httpx"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, id int64) error
}

type DeletePostHandler struct {
	postService PostDeleter
	log         ports.Logger
}

func NewDeletePostHandler(postService PostDeleter, log ports.Logger) *DeletePostHandler {
	return &DeletePostHandler{postService: postService, log: log}
}

func (h *DeletePostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id", custom_errors.ErrInvalidPostID)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to delete post")
		return
	}

	if err := h.postService.DeletePost(r.Context(), id); err != nil {
		httpx.WriteError(w, h.log, err, "Failed to delete post")
		return
	}
	httpx.WriteNoContent(w)
}
