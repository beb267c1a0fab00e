package post_http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-service/internal/application/validation"
	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	"blog-service/internal/infrastructure/inbound/http/httpx"
	post_http "blog-service/internal/infrastructure/inbound/http/post"
	"blog-service/internal/infrastructure/logger"
	mockpost "blog-service/mocks/post"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httpx.ErrorResponse {
	t.Helper()
	var resp httpx.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func testPost(id, authorID int64) *model.PostDetailed {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &model.PostDetailed{
		Post: model.Post{
			ID:        id,
			Title:     "Hello",
			Content:   "World",
			AuthorID:  authorID,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Author: &model.AuthorSummary{ID: authorID, Name: "Ada", Email: "ada@example.com"},
	}
}

func TestListPostsHandler_ListPosts(t *testing.T) {
	testLogger := logger.New("test")

	t.Run("Success", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewListPostsHandler(mockPostService, testLogger)
		mockPostService.On("ListPosts", mock.Anything).Return([]*model.PostDetailed{testPost(2, 1), testPost(1, 1)}, nil)

		rec := httptest.NewRecorder()
		handler.ListPosts(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		author, ok := got[0]["author"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Ada", author["name"])
		assert.EqualValues(t, 1, got[0]["authorId"])
		mockPostService.AssertExpectations(t)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewListPostsHandler(mockPostService, testLogger)
		mockPostService.On("ListPosts", mock.Anything).Return(nil, errors.New("timeout"))

		rec := httptest.NewRecorder()
		handler.ListPosts(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Failed to fetch posts", decodeError(t, rec).Error)
	})
}

func TestGetPostHandler_GetPost(t *testing.T) {
	testLogger := logger.New("test")

	t.Run("Success", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewGetPostHandler(mockPostService, testLogger)
		mockPostService.On("GetPostByID", mock.Anything, int64(7)).Return(testPost(7, 1), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/posts/7", nil)
		req.SetPathValue("id", "7")
		rec := httptest.NewRecorder()
		handler.GetPost(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got model.PostDetailed
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(7), got.ID)
		require.NotNil(t, got.Author)
		assert.Equal(t, int64(1), got.Author.ID)
	})

	t.Run("InvalidID", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewGetPostHandler(mockPostService, testLogger)

		req := httptest.NewRequest(http.MethodGet, "/api/posts/abc", nil)
		req.SetPathValue("id", "abc")
		rec := httptest.NewRecorder()
		handler.GetPost(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid post ID", decodeError(t, rec).Error)
		mockPostService.AssertNotCalled(t, "GetPostByID")
	})

	t.Run("PostNotFound", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewGetPostHandler(mockPostService, testLogger)
		mockPostService.On("GetPostByID", mock.Anything, int64(42)).Return(nil, custom_errors.ErrPostNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/posts/42", nil)
		req.SetPathValue("id", "42")
		rec := httptest.NewRecorder()
		handler.GetPost(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Post not found", decodeError(t, rec).Error)
	})
}

func TestCreatePostHandler_CreatePost(t *testing.T) {
	validate := validation.New()
	testLogger := logger.New("test")

	t.Run("Success", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewCreatePostHandler(mockPostService, validate, testLogger)
		mockPostService.On("CreatePost", mock.Anything, &model.CreatePostDTO{Title: "Hello", Content: "World", AuthorID: 1}).
			Return(testPost(1, 1), nil)

		body := `{"title":"Hello","content":"World","authorId":1}`
		rec := httptest.NewRecorder()
		handler.CreatePost(rec, httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		mockPostService.AssertExpectations(t)
	})

	t.Run("MissingFields", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewCreatePostHandler(mockPostService, validate, testLogger)

		rec := httptest.NewRecorder()
		handler.CreatePost(rec, httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeError(t, rec)
		assert.Equal(t, "Validation failed", resp.Error)
		assert.Len(t, resp.Details, 3)
		mockPostService.AssertNotCalled(t, "CreatePost")
	})

	t.Run("AuthorNotFound", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewCreatePostHandler(mockPostService, validate, testLogger)
		mockPostService.On("CreatePost", mock.Anything, mock.Anything).Return(nil, custom_errors.ErrAuthorNotFound)

		body := `{"title":"Hello","content":"World","authorId":99}`
		rec := httptest.NewRecorder()
		handler.CreatePost(rec, httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Author not found", decodeError(t, rec).Error)
	})

	t.Run("NotAnObject", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewCreatePostHandler(mockPostService, validate, testLogger)

		rec := httptest.NewRecorder()
		handler.CreatePost(rec, httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`[1,2]`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeError(t, rec)
		require.Len(t, resp.Details, 1)
		assert.Equal(t, "body", resp.Details[0].Field)
	})
}

func TestUpdatePostHandler_UpdatePost(t *testing.T) {
	validate := validation.New()
	testLogger := logger.New("test")

	t.Run("ReassignAuthor", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewUpdatePostHandler(mockPostService, validate, testLogger)
		mockPostService.On("UpdatePost", mock.Anything, int64(3), mock.MatchedBy(func(dto *model.UpdatePostDTO) bool {
			return dto.AuthorID != nil && *dto.AuthorID == 2 && dto.Title == nil && dto.Content == nil
		})).Return(testPost(3, 2), nil)

		req := httptest.NewRequest(http.MethodPut, "/api/posts/3", strings.NewReader(`{"authorId":2}`))
		req.SetPathValue("id", "3")
		rec := httptest.NewRecorder()
		handler.UpdatePost(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got model.PostDetailed
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(2), got.AuthorID)
		mockPostService.AssertExpectations(t)
	})

	t.Run("InvalidAuthorID", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewUpdatePostHandler(mockPostService, validate, testLogger)

		req := httptest.NewRequest(http.MethodPut, "/api/posts/3", strings.NewReader(`{"authorId":-4}`))
		req.SetPathValue("id", "3")
		rec := httptest.NewRecorder()
		handler.UpdatePost(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeError(t, rec)
		require.Len(t, resp.Details, 1)
		assert.Equal(t, "Author ID must be a positive integer", resp.Details[0].Message)
		mockPostService.AssertNotCalled(t, "UpdatePost")
	})

	t.Run("PostNotFound", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewUpdatePostHandler(mockPostService, validate, testLogger)
		mockPostService.On("UpdatePost", mock.Anything, int64(9), mock.Anything).Return(nil, custom_errors.ErrPostNotFound)

		req := httptest.NewRequest(http.MethodPut, "/api/posts/9", strings.NewReader(`{"title":"New"}`))
		req.SetPathValue("id", "9")
		rec := httptest.NewRecorder()
		handler.UpdatePost(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Post not found", decodeError(t, rec).Error)
	})
}

func TestDeletePostHandler_DeletePost(t *testing.T) {
	testLogger := logger.New("test")

	t.Run("Success", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewDeletePostHandler(mockPostService, testLogger)
		mockPostService.On("DeletePost", mock.Anything, int64(5)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/posts/5", nil)
		req.SetPathValue("id", "5")
		rec := httptest.NewRecorder()
		handler.DeletePost(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		mockPostService.AssertExpectations(t)
	})

	t.Run("InvalidID", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewDeletePostHandler(mockPostService, testLogger)

		req := httptest.NewRequest(http.MethodDelete, "/api/posts/0", nil)
		req.SetPathValue("id", "0")
		rec := httptest.NewRecorder()
		handler.DeletePost(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid post ID", decodeError(t, rec).Error)
	})

	t.Run("PostNotFound", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_http.NewDeletePostHandler(mockPostService, testLogger)
		mockPostService.On("DeletePost", mock.Anything, int64(5)).Return(custom_errors.ErrPostNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/posts/5", nil)
		req.SetPathValue("id", "5")
		rec := httptest.NewRecorder()
		handler.DeletePost(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Post not found", decodeError(t, rec).Error)
	})
}
