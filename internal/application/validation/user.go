package validation

import (
	model "blog-service/internal/domain/models"
)

type createUserRequest struct {
	Name  *string `json:"name" validate:"required,min=1"`
	Email *string `json:"email" validate:"required,email"`
}

type updateUserRequest struct {
	Name  *string `json:"name" validate:"omitnil,min=1"`
	Email *string `json:"email" validate:"omitnil,email"`
}

// CreateUser requires a non-empty name and a well-formed email. The email is
// trimmed and lowercased before it is checked.
func (v *Validator) CreateUser(body []byte) (*model.CreateUserDTO, error) {
	f, err := decode(body)
	if err != nil {
		return nil, err
	}

	req := &createUserRequest{
		Name:  f.str("name"),
		Email: normalizeEmail(f.str("email")),
	}
	if err := v.check(f, req); err != nil {
		return nil, err
	}

	return &model.CreateUserDTO{Name: *req.Name, Email: *req.Email}, nil
}

// UpdateUser applies the create rules to whichever fields are present.
func (v *Validator) UpdateUser(body []byte) (*model.UpdateUserDTO, error) {
	f, err := decode(body)
	if err != nil {
		return nil, err
	}

	req := &updateUserRequest{
		Name:  f.str("name"),
		Email: normalizeEmail(f.str("email")),
	}
	if err := v.check(f, req); err != nil {
		return nil, err
	}

	return &model.UpdateUserDTO{Name: req.Name, Email: req.Email}, nil
}
