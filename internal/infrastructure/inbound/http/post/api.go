package post_http

import (
	"net/http"

	"blog-service/internal/application/validation"
	post_service "blog-service/internal/domain/ports/input/post"
	ports "blog-service/internal/domain/ports/output"
)

type PostAPI struct {
	listPostsHandler  *ListPostsHandler
	getPostHandler    *GetPostHandler
	createPostHandler *CreatePostHandler
	updatePostHandler *UpdatePostHandler
	deletePostHandler *DeletePostHandler
}

func NewPostAPI(postService post_service.Service, validate *validation.Validator, log ports.Logger) *PostAPI {
	return &PostAPI{
		listPostsHandler:  NewListPostsHandler(postService, log),
		getPostHandler:    NewGetPostHandler(postService, log),
		createPostHandler: NewCreatePostHandler(postService, validate, log),
		updatePostHandler: NewUpdatePostHandler(postService, validate, log),
		deletePostHandler: NewDeletePostHandler(postService, log),
	}
}

func (a *PostAPI) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/posts", a.listPostsHandler.ListPosts)
	mux.HandleFunc("GET /api/posts/{id}", a.getPostHandler.GetPost)
	mux.HandleFunc("POST /api/posts", a.createPostHandler.CreatePost)
	mux.HandleFunc("PUT /api/posts/{id}", a.updatePostHandler.UpdatePost)
	mux.HandleFunc("DELETE /api/posts/{id}", a.deletePostHandler.DeletePost)
}
