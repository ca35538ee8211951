package controllers

import (
	"net/http"
	"strings"

	"inkwell/internal/apperrors"
	"inkwell/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TagController serves the authenticated admin tag surface.
type TagController struct {
	repo repository.TagRepository
	log  zerolog.Logger
}

func NewTagController(repo repository.TagRepository, log zerolog.Logger) *TagController {
	return &TagController{
		repo: repo,
		log:  log.With().Str("controller", "tags").Logger(),
	}
}

type TagRequest struct {
	Name string `json:"name"`
}

func (r *TagRequest) name() (string, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return "", apperrors.Validation("name is required")
	}
	return name, nil
}

func (tc *TagController) ListTags(c *gin.Context) {
	tags, err := tc.repo.FindAll()
	if err != nil {
		respondError(c, tc.log, err)
		return
	}

	out := make([]AdminTagResponse, 0, len(tags))
	for i := range tags {
		out = append(out, toAdminTagResponse(&tags[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (tc *TagController) CreateTag(c *gin.Context) {
	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, tc.log, bindingError(err))
		return
	}
	name, err := req.name()
	if err != nil {
		respondError(c, tc.log, err)
		return
	}

	tag, err := tc.repo.Create(name)
	if err != nil {
		respondError(c, tc.log, err)
		return
	}
	c.JSON(http.StatusCreated, toTagResponse(tag))
}

func (tc *TagController) UpdateTag(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondError(c, tc.log, err)
		return
	}

	var req TagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, tc.log, bindingError(err))
		return
	}
	name, err := req.name()
	if err != nil {
		respondError(c, tc.log, err)
		return
	}

	tag, err := tc.repo.Update(id, name)
	if err != nil {
		respondError(c, tc.log, err)
		return
	}
	c.JSON(http.StatusOK, toTagResponse(tag))
}

func (tc *TagController) DeleteTag(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondError(c, tc.log, err)
		return
	}

	if err := tc.repo.Delete(id); err != nil {
		respondError(c, tc.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
