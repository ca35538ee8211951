package controllers

import (
	"net/http"
	"strings"

	"inkwell/internal/repository"
	"inkwell/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PublicController serves the unauthenticated read-only catalog: published
// articles and the tag list.
type PublicController struct {
	articles repository.ArticleRepository
	tags     repository.TagRepository
	log      zerolog.Logger
}

func NewPublicController(articles repository.ArticleRepository, tags repository.TagRepository, log zerolog.Logger) *PublicController {
	return &PublicController{
		articles: articles,
		tags:     tags,
		log:      log.With().Str("controller", "public").Logger(),
	}
}

// parseCSVTags splits the ?tags= query into tag names. Blank entries are
// dropped; an all-blank value means no filter.
func parseCSVTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ListArticles lists published articles, optionally narrowed to those
// carrying any of the requested tag names (OR semantics).
func (pc *PublicController) ListArticles(c *gin.Context) {
	page, limit, err := services.ParsePageLimit(c.Query("page"), c.Query("limit"))
	if err != nil {
		respondError(c, pc.log, err)
		return
	}

	articles, total, err := pc.articles.List(repository.ArticleListFilter{
		Page:          page,
		Limit:         limit,
		PublishedOnly: true,
		TagNames:      parseCSVTags(c.Query("tags")),
	})
	if err != nil {
		respondError(c, pc.log, err)
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

// GetArticle returns a published article; drafts are indistinguishable from
// missing ids here.
func (pc *PublicController) GetArticle(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		respondError(c, pc.log, err)
		return
	}

	article, err := pc.articles.FindPublishedByID(id)
	if err != nil {
		respondError(c, pc.log, err)
		return
	}
	c.JSON(http.StatusOK, toArticleResponse(article))
}

func (pc *PublicController) ListTags(c *gin.Context) {
	tags, err := pc.tags.FindAll()
	if err != nil {
		respondError(c, pc.log, err)
		return
	}

	out := make([]TagResponse, 0, len(tags))
	for i := range tags {
		out = append(out, toTagResponse(&tags[i]))
	}
	c.JSON(http.StatusOK, out)
}
