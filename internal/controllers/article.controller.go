package controllers

import (
	"net/http"
	"strings"

	"inkwell/internal/apperrors"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ArticleController serves the authenticated admin article surface.
type ArticleController struct {
	repo repository.ArticleRepository
	log  zerolog.Logger
}

func NewArticleController(repo repository.ArticleRepository, log zerolog.Logger) *ArticleController {
	return &ArticleController{
		repo: repo,
		log:  log.With().Str("controller", "articles").Logger(),
	}
}

// ArticleRequest is the full-write body shared by create and replace.
type ArticleRequest struct {
	Title   string               `json:"title"`
	Summary string               `json:"summary"`
	Image   *string              `json:"image"`
	Status  models.ArticleStatus `json:"status" binding:"required,oneof=draft published"`
	Value   models.JSONArray     `json:"value"`
	HTML    string               `json:"html"`
	TagIDs  []string             `json:"tagIds" binding:"omitempty,dive,uuid"`
}

// toInput trims and validates the scalar fields, collecting every violation
// into one message.
func (r *ArticleRequest) toInput() (*repository.ArticleInput, error) {
	title := strings.TrimSpace(r.Title)
	summary := strings.TrimSpace(r.Summary)

	var violations []string
	if title == "" {
		violations = append(violations, "title is required")
	}
	if summary == "" {
		violations = append(violations, "summary is required")
	}
	if r.HTML == "" {
		violations = append(violations, "html is required")
	}

	var image *string
	if r.Image != nil {
		trimmed := strings.TrimSpace(*r.Image)
		if trimmed == "" {
			violations = append(violations, "image must not be empty")
		} else {
			image = &trimmed
		}
	}

	if len(violations) > 0 {
		return nil, apperrors.Validation(strings.Join(violations, ", "))
	}

	value := r.Value
	if value == nil {
		value = models.JSONArray{}
	}
	tagIDs := r.TagIDs
	if tagIDs == nil {
		tagIDs = []string{}
	}

	return &repository.ArticleInput{
		Title:   title,
		Summary: summary,
		Image:   image,
		Status:  r.Status,
		Value:   value,
		HTML:    r.HTML,
		TagIDs:  tagIDs,
	}, nil
}

func (ac *ArticleController) ListArticles(c *gin.Context) {
	page, limit, err := services.ParsePageLimit(c.Query("page"), c.Query("limit"))
	if err != nil {
		respondError(c, ac.log, err)
		return
	}

	filter := repository.ArticleListFilter{Page: page, Limit: limit}
	if raw := c.Query("status"); raw != "" {
		status := models.ArticleStatus(raw)
		if status != models.StatusDraft && status != models.StatusPublished {
			respondError(c, ac.log, apperrors.Validation("status must be one of: draft published"))
			return
		}
		filter.Status = &status
	}

	articles, total, err := ac.repo.List(filter)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}

	items := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		items = append(items, toArticleResponse(&articles[i]))
	}
	c.JSON(http.StatusOK, PaginatedArticles{
		Items:      items,
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: services.TotalPages(total, limit),
	})
}

func (ac *ArticleController) CreateArticle(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, ac.log, bindingError(err))
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, ac.log, err)
		return
	}

	article, err := ac.repo.Create(input)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}
	c.JSON(http.StatusCreated, toArticleResponse(article))
}

// GetArticle returns the admin detail projection, which carries raw tag ids
// rather than names.
func (ac *ArticleController) GetArticle(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}

	article, err := ac.repo.FindByID(id)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}
	c.JSON(http.StatusOK, toAdminArticleResponse(article))
}

func (ac *ArticleController) UpdateArticle(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}

	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, ac.log, bindingError(err))
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, ac.log, err)
		return
	}

	article, err := ac.repo.Replace(id, input)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

// ToggleArticleStatus flips draft and published; callers needing a specific
// target state must know the current one.
func (ac *ArticleController) ToggleArticleStatus(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}

	article, err := ac.repo.ToggleStatus(id)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

func (ac *ArticleController) DeleteArticle(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondError(c, ac.log, err)
		return
	}

	if err := ac.repo.Delete(id); err != nil {
		respondError(c, ac.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
