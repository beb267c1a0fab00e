package post_http

import (
	"context"
	"net/http"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/inbound/http/httpx"
)

type PostLister interface {
	ListPosts(ctx context.Context) ([]*model.PostDetailed, error)
}

type ListPostsHandler struct {
	postService PostLister
	log         ports.Logger
}

func NewListPostsHandler(postService PostLister, log ports.Logger) *ListPostsHandler {
	return &ListPostsHandler{postService: postService, log: log}
}

func (h *ListPostsHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.ListPosts(r.Context())
	if err != nil {
		httpx.WriteError(w, h.log, err, "Failed to fetch posts")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, posts)
}
