package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"blog_backend/internal/feature/messages/domain"
	"blog_backend/internal/feature/messages/domain/entity"
)

// mockMessageUsecase is a mock implementation of the MessageUsecase interface.
type mockMessageUsecase struct {
	CreateFunc       func(ctx context.Context, names, email, text string) (*entity.Message, error)
	ListFunc         func(ctx context.Context) ([]entity.Message, error)
	GetFunc          func(ctx context.Context, id uint) (*entity.Message, error)
	UpdateStatusFunc func(ctx context.Context, id uint, status string) error
	DeleteFunc       func(ctx context.Context, id uint) error
}

func (m *mockMessageUsecase) Create(ctx context.Context, names, email, text string) (*entity.Message, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, names, email, text)
	}
	return &entity.Message{ID: 1, Names: names, Email: email, Body: text, Status: entity.StatusPending}, nil
}

func (m *mockMessageUsecase) List(ctx context.Context) ([]entity.Message, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockMessageUsecase) Get(ctx context.Context, id uint) (*entity.Message, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrMessageNotFound
}

func (m *mockMessageUsecase) UpdateStatus(ctx context.Context, id uint, status string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return domain.ErrMessageNotFound
}

func (m *mockMessageUsecase) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return domain.ErrMessageNotFound
}

func sendJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMessageHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockFunc       func(ctx context.Context, names, email, text string) (*entity.Message, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "success: message stored",
			requestBody:    gin.H{"names": "Jane", "email": "jane@example.com", "message": "Hello there"},
			mockFunc:       nil, // Default mock: success
			expectedStatus: http.StatusOK,
			expectedBody:   "Thanks for contacting us !",
		},
		{
			name:           "failure: missing message text",
			requestBody:    gin.H{"names": "Jane", "email": "jane@example.com"},
			mockFunc:       nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Message",
		},
		{
			name:        "failure: duplicate message",
			requestBody: gin.H{"names": "Jane", "email": "jane@example.com", "message": "Hello there"},
			mockFunc: func(ctx context.Context, names, email, text string) (*entity.Message, error) {
				return nil, domain.ErrDuplicateMessage
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "You already sent this message !",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewMessageHandler(&mockMessageUsecase{CreateFunc: tt.mockFunc})
			router := gin.New()
			router.POST("/contact/sendMessage", h.Create)

			w := sendJSON(t, router, http.MethodPost, "/contact/sendMessage", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestMessageHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("failure: unknown message", func(t *testing.T) {
		h := NewMessageHandler(&mockMessageUsecase{})
		router := gin.New()
		router.PUT("/contact/updateMessage/:id", h.UpdateStatus)

		w := sendJSON(t, router, http.MethodPut, "/contact/updateMessage/42", gin.H{"status": "Read"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Message not found!")
	})

	t.Run("success: status updated", func(t *testing.T) {
		h := NewMessageHandler(&mockMessageUsecase{
			UpdateStatusFunc: func(ctx context.Context, id uint, status string) error { return nil },
		})
		router := gin.New()
		router.PUT("/contact/updateMessage/:id", h.UpdateStatus)

		w := sendJSON(t, router, http.MethodPut, "/contact/updateMessage/1", gin.H{"status": "Read"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Message status updated successfully")
	})
}

func TestMessageHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("failure: unknown message", func(t *testing.T) {
		h := NewMessageHandler(&mockMessageUsecase{})
		router := gin.New()
		// Legacy clients delete contact messages over GET.
		router.GET("/removeContactMessage/:id", h.Delete)

		w := sendJSON(t, router, http.MethodGet, "/removeContactMessage/42", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success: message deleted", func(t *testing.T) {
		h := NewMessageHandler(&mockMessageUsecase{
			DeleteFunc: func(ctx context.Context, id uint) error { return nil },
		})
		router := gin.New()
		router.GET("/removeContactMessage/:id", h.Delete)

		w := sendJSON(t, router, http.MethodGet, "/removeContactMessage/1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Message deleted successfully")
	})
}

func TestMessageHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewMessageHandler(&mockMessageUsecase{
		ListFunc: func(ctx context.Context) ([]entity.Message, error) {
			return []entity.Message{
				{ID: 1, Names: "Jane", Email: "jane@example.com", Body: "Hi", Status: entity.StatusPending},
			}, nil
		},
	})
	router := gin.New()
	router.GET("/contact/getMessages", h.List)

	w := sendJSON(t, router, http.MethodGet, "/contact/getMessages", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	messages, ok := body["messages"].([]any)
	assert.True(t, ok, "expected messages array in response")
	assert.Len(t, messages, 1)
}
