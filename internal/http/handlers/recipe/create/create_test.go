package create

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/vitalbites-backend/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vitalbites-backend/internal/models"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userUID string, req models.DummyRecipe) (string, error) {
	args := m.Called(ctx, userUID, req)
	return args.String(0), args.Error(1)
}

func validRecipe() models.DummyRecipe {
	return models.DummyRecipe{
		Name:         "Chickpea Curry",
		PrepTime:     "25 mins",
		Servings:     4,
		Difficulty:   "easy",
		Ingredients:  []string{"chickpeas", "tomatoes"},
		Instructions: []string{"soak", "simmer"},
		Calories:     550,
		Protein:      30,
	}
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		requestBody    interface{}
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешное добавление рецепта",
			requestBody: validRecipe(),
			userUID:     "uid-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "uid-1", mock.AnythingOfType("models.DummyRecipe")).
					Return("recipe-1", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"recipe-1"`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:           "ошибка валидации",
			requestBody:    models.DummyRecipe{},
			userUID:        "uid-1",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Name is a required field`,
		},
		{
			name:           "отсутствует авторизация",
			requestBody:    validRecipe(),
			userUID:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:        "ошибка сервиса",
			requestBody: validRecipe(),
			userUID:     "uid-1",
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "uid-1", mock.AnythingOfType("models.DummyRecipe")).
					Return("", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not create recipe"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				assert.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/recipes", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			ctx := req.Context()
			if tt.userUID != "" {
				ctx = context.WithValue(ctx, middlewarectx.UserUID, tt.userUID)
			}
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
