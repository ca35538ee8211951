package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"inkwell/internal/apperrors"
	"inkwell/internal/controllers"
	"inkwell/internal/models"
	"inkwell/internal/repository/mocks"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTagRouter() (*gin.Engine, *mocks.MockTagRepository) {
	mockRepo := new(mocks.MockTagRepository)
	controller := controllers.NewTagController(mockRepo, zerolog.Nop())
	router := setupTestRouter()

	admin := router.Group("/api/admin")
	admin.GET("/tags", controller.ListTags)
	admin.POST("/tags", controller.CreateTag)
	admin.PUT("/tags/:id", controller.UpdateTag)
	admin.DELETE("/tags/:id", controller.DeleteTag)
	return router, mockRepo
}

func TestAdminListTags(t *testing.T) {
	router, mockRepo := setupTagRouter()
	mockRepo.On("FindAll").Return([]models.Tag{
		{ID: tagIDX, Name: "science", CreatedAt: time.Now(), UsageCount: 2},
		{ID: tagIDY, Name: "culture", CreatedAt: time.Now(), UsageCount: 0},
	}, nil)

	w := performRequest(router, http.MethodGet, "/api/admin/tags", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, float64(2), body[0]["usageCount"])
	assert.Equal(t, float64(0), body[1]["usageCount"])
}

func TestCreateTag(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		setupMock      func(*mocks.MockTagRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful creation",
			body: map[string]interface{}{"name": "science"},
			setupMock: func(m *mocks.MockTagRepository) {
				m.On("Create", "science").Return(&models.Tag{ID: tagIDX, Name: "science"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "name trimmed before store",
			body: map[string]interface{}{"name": "  science  "},
			setupMock: func(m *mocks.MockTagRepository) {
				m.On("Create", "science").Return(&models.Tag{ID: tagIDX, Name: "science"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate name conflicts",
			body: map[string]interface{}{"name": "science"},
			setupMock: func(m *mocks.MockTagRepository) {
				m.On("Create", "science").Return(nil, apperrors.Conflict())
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Conflict",
		},
		{
			name:           "blank name rejected",
			body:           map[string]interface{}{"name": "   "},
			setupMock:      func(m *mocks.MockTagRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockRepo := setupTagRouter()
			tt.setupMock(mockRepo)

			w := performRequest(router, http.MethodPost, "/api/admin/tags", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, errorMessage(t, w))
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUpdateTag(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*mocks.MockTagRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful rename",
			setupMock: func(m *mocks.MockTagRepository) {
				m.On("Update", tagIDX, "physics").Return(&models.Tag{ID: tagIDX, Name: "physics"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "missing tag",
			setupMock: func(m *mocks.MockTagRepository) {
				m.On("Update", tagIDX, "physics").Return(nil, apperrors.NotFound("Not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Not found",
		},
		{
			name: "rename onto existing name conflicts",
			setupMock: func(m *mocks.MockTagRepository) {
				m.On("Update", tagIDX, "physics").Return(nil, apperrors.Conflict())
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "Conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockRepo := setupTagRouter()
			tt.setupMock(mockRepo)

			w := performRequest(router, http.MethodPut, "/api/admin/tags/"+tagIDX,
				map[string]interface{}{"name": "physics"})

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, errorMessage(t, w))
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDeleteTag(t *testing.T) {
	t.Run("delete succeeds despite associations", func(t *testing.T) {
		router, mockRepo := setupTagRouter()
		mockRepo.On("Delete", tagIDX).Return(nil)

		w := performRequest(router, http.MethodDelete, "/api/admin/tags/"+tagIDX, nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing tag", func(t *testing.T) {
		router, mockRepo := setupTagRouter()
		mockRepo.On("Delete", tagIDX).Return(apperrors.NotFound("Not found"))

		w := performRequest(router, http.MethodDelete, "/api/admin/tags/"+tagIDX, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		router, mockRepo := setupTagRouter()

		w := performRequest(router, http.MethodDelete, "/api/admin/tags/123", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
	})
}
