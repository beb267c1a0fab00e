package post_http

import (
	"context"
	"log/slog"
	"net/http"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/httpx"
)

type PostGetter interface {
	GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error)
}

type GetPostHandler struct {
	postService PostGetter
	log         ports.Logger
}

func NewGetPostHandler(postService PostGetter, log ports.Logger) *GetPostHandler {
	return &GetPostHandler{postService: postService, log: log}
}

func (h *GetPostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id", custom_errors.ErrInvalidPostID)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to fetch post")
		return
	}

	h.log.Debug("Received GetPost request", slog.Int64("post_id", id))
	post, err := h.postService.GetPostByID(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to fetch post")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, post)
}
