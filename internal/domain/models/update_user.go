package model

type UpdateUserDTO struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (u *UpdateUserDTO) IsEmpty() bool {
	return u == nil || (u.Name == nil && u.Email == nil)
}
