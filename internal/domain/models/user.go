package model

import "time"

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserWithPostCount struct {
	User
	PostCount int64 `json:"postCount"`
}

type UserDetailed struct {
	User
	Posts []*Post `json:"posts"`
}

type AuthorSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *User) Summary() *AuthorSummary {
	return &AuthorSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
