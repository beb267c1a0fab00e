package model

type UpdatePostDTO struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	AuthorID *int64  `json:"authorId,omitempty"`
}

func (u *UpdatePostDTO) IsEmpty() bool {
	return u == nil || (u.Title == nil && u.Content == nil && u.AuthorID == nil)
}
