package repository

import (
	"errors"

	"inkwell/internal/apperrors"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// ArticleInput carries the full field set of an article write. Both create
// and replace take the complete input; replace overwrites every field and
// swaps the tag set wholesale.
type ArticleInput struct {
	Title   string
	Summary string
	Image   *string
	Status  models.ArticleStatus
	Value   models.JSONArray
	HTML    string
	TagIDs  []string
}

// ArticleListFilter parameterizes the shared listing query for both
// audiences. PublishedOnly is the public restriction; Status is the optional
// admin filter; TagNames match with OR semantics.
type ArticleListFilter struct {
	Page          int
	Limit         int
	PublishedOnly bool
	Status        *models.ArticleStatus
	TagNames      []string
}

type ArticleRepository interface {
	Create(input *ArticleInput) (*models.Article, error)
	Replace(id string, input *ArticleInput) (*models.Article, error)
	Delete(id string) error
	FindByID(id string) (*models.Article, error)
	FindPublishedByID(id string) (*models.Article, error)
	ToggleStatus(id string) (*models.Article, error)
	List(filter ArticleListFilter) ([]models.Article, int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// resolveTags loads the tag rows for the given id set inside the caller's
// transaction. A short result means at least one id does not resolve and the
// whole write is rejected; the transactional read plus the ON DELETE CASCADE
// constraint on the join table is what keeps a concurrent tag delete from
// ever leaving a dangling reference.
func resolveTags(tx *gorm.DB, ids []string) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []models.Tag
	if err := tx.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, apperrors.NotFound("Tag not found")
	}
	return tags, nil
}

func (r *articleRepository) Create(input *ArticleInput) (*models.Article, error) {
	var created models.Article
	err := r.db.Transaction(func(tx *gorm.DB) error {
		tags, err := resolveTags(tx, input.TagIDs)
		if err != nil {
			return err
		}

		article := models.Article{
			Title:   input.Title,
			Summary: input.Summary,
			Image:   input.Image,
			Status:  input.Status,
			Value:   input.Value,
			HTML:    input.HTML,
			Tags:    tags,
		}
		// Omit("Tags.*") writes the join rows without upserting tag rows.
		if err := tx.Omit("Tags.*").Create(&article).Error; err != nil {
			return err
		}
		return tx.Preload("Tags").First(&created, "id = ?", article.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *articleRepository) Replace(id string, input *ArticleInput) (*models.Article, error) {
	var replaced models.Article
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var article models.Article
		if err := tx.First(&article, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Not found")
			}
			return err
		}

		tags, err := resolveTags(tx, input.TagIDs)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"title":   input.Title,
			"summary": input.Summary,
			"image":   input.Image,
			"status":  input.Status,
			"value":   input.Value,
			"html":    input.HTML,
		}
		if err := tx.Model(&article).Updates(updates).Error; err != nil {
			return err
		}

		// Full set replacement: associations absent from the new set are
		// dropped, not merged.
		if len(tags) == 0 {
			if err := tx.Model(&article).Association("Tags").Clear(); err != nil {
				return err
			}
		} else if err := tx.Model(&article).Association("Tags").Replace(tags); err != nil {
			return err
		}
		return tx.Preload("Tags").First(&replaced, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &replaced, nil
}

func (r *articleRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var article models.Article
		if err := tx.First(&article, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Not found")
			}
			return err
		}
		if err := tx.Exec("DELETE FROM article_tags WHERE article_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&article).Error
	})
}

func (r *articleRepository) FindByID(id string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Tags").First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Not found")
		}
		return nil, err
	}
	return &article, nil
}

// FindPublishedByID is the public-read boundary: a draft article is
// indistinguishable from a missing one.
func (r *articleRepository) FindPublishedByID(id string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Tags").
		Where("id = ? AND status = ?", id, models.StatusPublished).
		First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Not found")
		}
		return nil, err
	}
	return &article, nil
}

// ToggleStatus flips draft to published and back. It is the only status
// mutator; there is no direct set-status operation.
func (r *articleRepository) ToggleStatus(id string) (*models.Article, error) {
	var toggled models.Article
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var article models.Article
		if err := tx.First(&article, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Not found")
			}
			return err
		}
		next := article.Status.Toggle()
		if err := tx.Model(&article).Update("status", next).Error; err != nil {
			return err
		}
		return tx.Preload("Tags").First(&toggled, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &toggled, nil
}

func (r *articleRepository) List(f ArticleListFilter) ([]models.Article, int64, error) {
	filter := func(db *gorm.DB) *gorm.DB {
		if f.PublishedOnly {
			db = db.Where("status = ?", models.StatusPublished)
		} else if f.Status != nil {
			db = db.Where("status = ?", *f.Status)
		}
		if len(f.TagNames) > 0 {
			db = db.Where(
				"EXISTS (SELECT 1 FROM article_tags JOIN tags ON tags.id = article_tags.tag_id "+
					"WHERE article_tags.article_id = articles.id AND tags.name IN ?)",
				f.TagNames,
			)
		}
		return db
	}

	var total int64
	if err := filter(r.db.Model(&models.Article{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	err := filter(r.db.Model(&models.Article{})).
		Preload("Tags").
		Order("created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}
