package validation

import (
	model "blog-service/internal/domain/models"
)

type createPostRequest struct {
	Title    *string `json:"title" validate:"required,min=1"`
	Content  *string `json:"content" validate:"required,min=1"`
	AuthorID *int64  `json:"authorId" validate:"required,gt=0"`
}

type updatePostRequest struct {
	Title    *string `json:"title" validate:"omitnil,min=1"`
	Content  *string `json:"content" validate:"omitnil,min=1"`
	AuthorID *int64  `json:"authorId" validate:"omitnil,gt=0"`
}

func (v *Validator) CreatePost(body []byte) (*model.CreatePostDTO, error) {
	f, err := decode(body)
	if err != nil {
		return nil, err
	}

	req := &createPostRequest{
		Title:    f.str("title"),
		Content:  f.str("content"),
		AuthorID: f.integer("authorId"),
	}
	if err := v.check(f, req); err != nil {
		return nil, err
	}

	return &model.CreatePostDTO{Title: *req.Title, Content: *req.Content, AuthorID: *req.AuthorID}, nil
}

func (v *Validator) UpdatePost(body []byte) (*model.UpdatePostDTO, error) {
	f, err := decode(body)
	if err != nil {
		return nil, err
	}

	req := &updatePostRequest{
		Title:    f.str("title"),
		Content:  f.str("content"),
		AuthorID: f.integer("authorId"),
	}
	if err := v.check(f, req); err != nil {
		return nil, err
	}

	return &model.UpdatePostDTO{Title: req.Title, Content: req.Content, AuthorID: req.AuthorID}, nil
}
