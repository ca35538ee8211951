package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"inkwell/internal/apperrors"
	"inkwell/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func isUUID(s string) bool {
	return uuid.Validate(s) == nil
}

// respondError is the single place error kinds become HTTP statuses. Storage
// detail is logged for the operator and never echoed to the client.
func respondError(c *gin.Context, log zerolog.Logger, err error) {
	kind := apperrors.KindOf(err)
	if kind == apperrors.KindInternal {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	c.JSON(statusForKind(kind), gin.H{
		"error": gin.H{"message": apperrors.MessageOf(err)},
	})
}

func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindUnauthorized:
		return http.StatusUnauthorized
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// bindingError turns a gin binding failure into a validation error whose
// message lists every violated constraint, not just the first.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		return apperrors.Validation(strings.Join(msgs, ", "))
	}
	return apperrors.Validation("Invalid request data")
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "uuid":
		return field + " must be a valid uuid"
	case "email":
		return field + " must be a valid email"
	default:
		return field + " is invalid"
	}
}

// idParam validates the :id path parameter as a UUID.
func idParam(c *gin.Context) (string, error) {
	id := c.Param("id")
	if !isUUID(id) {
		return "", apperrors.Validation("Invalid id")
	}
	return id, nil
}

// Response projections. The public article shape carries tag names; the
// admin detail shape carries raw tag ids instead.

type ArticleResponse struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Summary   string               `json:"summary"`
	Image     *string              `json:"image"`
	Status    models.ArticleStatus `json:"status"`
	Tags      []string             `json:"tags"`
	Value     models.JSONArray     `json:"value"`
	HTML      string               `json:"html"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

type AdminArticleResponse struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Summary   string               `json:"summary"`
	Image     *string              `json:"image"`
	Status    models.ArticleStatus `json:"status"`
	TagIDs    []string             `json:"tagIds"`
	Value     models.JSONArray     `json:"value"`
	HTML      string               `json:"html"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

type TagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type AdminTagResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
	UsageCount int64     `json:"usageCount"`
}

type PaginatedArticles struct {
	Items      []ArticleResponse `json:"items"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalItems int64             `json:"totalItems"`
	TotalPages int               `json:"totalPages"`
}

func toArticleResponse(a *models.Article) ArticleResponse {
	value := a.Value
	if value == nil {
		value = models.JSONArray{}
	}
	return ArticleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Summary:   a.Summary,
		Image:     a.Image,
		Status:    a.Status,
		Tags:      a.TagNames(),
		Value:     value,
		HTML:      a.HTML,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toAdminArticleResponse(a *models.Article) AdminArticleResponse {
	value := a.Value
	if value == nil {
		value = models.JSONArray{}
	}
	return AdminArticleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Summary:   a.Summary,
		Image:     a.Image,
		Status:    a.Status,
		TagIDs:    a.TagIDs(),
		Value:     value,
		HTML:      a.HTML,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toTagResponse(t *models.Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name, CreatedAt: t.CreatedAt}
}

func toAdminTagResponse(t *models.Tag) AdminTagResponse {
	return AdminTagResponse{
		ID:         t.ID,
		Name:       t.Name,
		CreatedAt:  t.CreatedAt,
		UsageCount: t.UsageCount,
	}
}
