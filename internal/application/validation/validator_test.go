package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/application/validation"
	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
)

func ptr[T any](v T) *T {
	return &v
}

func violations(t *testing.T, err error) []custom_errors.FieldViolation {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, custom_errors.KindValidationFailed, custom_errors.KindOf(err))
	return custom_errors.DetailsOf(err)
}

func TestValidator_CreateUser(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name    string
		body    string
		want    *model.CreateUserDTO
		wantErr []custom_errors.FieldViolation
	}{
		{
			name: "valid payload",
			body: `{"name":"A","email":"a@x.com"}`,
			want: &model.CreateUserDTO{Name: "A", Email: "a@x.com"},
		},
		{
			name: "email normalized",
			body: `{"name":"A","email":"  Alice@Example.COM "}`,
			want: &model.CreateUserDTO{Name: "A", Email: "alice@example.com"},
		},
		{
			name: "unknown fields ignored",
			body: `{"name":"A","email":"a@x.com","role":"admin"}`,
			want: &model.CreateUserDTO{Name: "A", Email: "a@x.com"},
		},
		{
			name: "all violations collected",
			body: `{"name":"","email":"not-an-email"}`,
			wantErr: []custom_errors.FieldViolation{
				{Field: "name", Rule: "min", Message: "Name is required"},
				{Field: "email", Rule: "email", Message: "Invalid email format"},
			},
		},
		{
			name: "missing fields",
			body: `{}`,
			wantErr: []custom_errors.FieldViolation{
				{Field: "name", Rule: "required", Message: "Name is required"},
				{Field: "email", Rule: "required", Message: "Email is required"},
			},
		},
		{
			name: "wrong types",
			body: `{"name":5,"email":null}`,
			wantErr: []custom_errors.FieldViolation{
				{Field: "name", Rule: "type", Message: "Name must be a string"},
				{Field: "email", Rule: "type", Message: "Email must not be null"},
			},
		},
		{
			name: "not an object",
			body: `["a"]`,
			wantErr: []custom_errors.FieldViolation{
				{Field: "body", Rule: "type", Message: "Request body must be a JSON object"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.CreateUser([]byte(tt.body))

			if tt.wantErr != nil {
				assert.Nil(t, got)
				assert.Equal(t, tt.wantErr, violations(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidator_UpdateUser(t *testing.T) {
	v := validation.New()

	got, err := v.UpdateUser([]byte(`{}`))
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())

	got, err = v.UpdateUser(nil)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())

	got, err = v.UpdateUser([]byte(`{"email":"B@X.com"}`))
	require.NoError(t, err)
	assert.Nil(t, got.Name)
	assert.Equal(t, ptr("b@x.com"), got.Email)

	_, err = v.UpdateUser([]byte(`{"name":""}`))
	assert.Equal(t, []custom_errors.FieldViolation{
		{Field: "name", Rule: "min", Message: "Name is required"},
	}, violations(t, err))
}

func TestValidator_CreatePost(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name    string
		body    string
		want    *model.CreatePostDTO
		wantErr []custom_errors.FieldViolation
	}{
		{
			name: "valid payload",
			body: `{"title":"Hello","content":"World","authorId":1}`,
			want: &model.CreatePostDTO{Title: "Hello", Content: "World", AuthorID: 1},
		},
		{
			name: "non positive author",
			body: `{"title":"Hello","content":"World","authorId":0}`,
			wantErr: []custom_errors.FieldViolation{
				{Field: "authorId", Rule: "gt", Message: "Author ID must be a positive integer"},
			},
		},
		{
			name: "fractional author",
			body: `{"title":"Hello","content":"World","authorId":1.5}`,
			wantErr: []custom_errors.FieldViolation{
				{Field: "authorId", Rule: "int", Message: "Author ID must be a positive integer"},
			},
		},
		{
			name: "author as string",
			body: `{"title":"Hello","content":"World","authorId":"1"}`,
			wantErr: []custom_errors.FieldViolation{
				{Field: "authorId", Rule: "type", Message: "Author ID must be a number"},
			},
		},
		{
			name: "everything missing",
			body: `{}`,
			wantErr: []custom_errors.FieldViolation{
				{Field: "title", Rule: "required", Message: "Title is required"},
				{Field: "content", Rule: "required", Message: "Content is required"},
				{Field: "authorId", Rule: "required", Message: "Author ID is required"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.CreatePost([]byte(tt.body))

			if tt.wantErr != nil {
				assert.Nil(t, got)
				assert.Equal(t, tt.wantErr, violations(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidator_UpdatePost(t *testing.T) {
	v := validation.New()

	got, err := v.UpdatePost([]byte(`{"authorId":42}`))
	require.NoError(t, err)
	assert.Equal(t, &model.UpdatePostDTO{AuthorID: ptr(int64(42))}, got)

	_, err = v.UpdatePost([]byte(`{"title":"","content":"","authorId":-1}`))
	assert.Equal(t, []custom_errors.FieldViolation{
		{Field: "title", Rule: "min", Message: "Title is required"},
		{Field: "content", Rule: "min", Message: "Content is required"},
		{Field: "authorId", Rule: "gt", Message: "Author ID must be a positive integer"},
	}, violations(t, err))
}
