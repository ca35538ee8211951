package repository

import (
	"errors"

	"inkwell/internal/apperrors"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

type TagRepository interface {
	FindAll() ([]models.Tag, error)
	Create(name string) (*models.Tag, error)
	Update(id, name string) (*models.Tag, error)
	Delete(id string) error
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// FindAll returns all tags ordered by creation time descending, each
// annotated with the number of articles currently associated.
func (r *tagRepository) FindAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Model(&models.Tag{}).
		Select("tags.*, COUNT(article_tags.article_id) AS usage_count").
		Joins("LEFT JOIN article_tags ON article_tags.tag_id = tags.id").
		Group("tags.id").
		Order("tags.created_at DESC").
		Find(&tags).Error
	return tags, err
}

// Create inserts a new tag. Name uniqueness is enforced by the database
// index, so a concurrent duplicate insert also lands here as a conflict.
func (r *tagRepository) Create(name string) (*models.Tag, error) {
	tag := models.Tag{Name: name}
	if err := r.db.Create(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict()
		}
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) Update(id, name string) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.First(&tag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Not found")
		}
		return nil, err
	}

	tag.Name = name
	if err := r.db.Save(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict()
		}
		return nil, err
	}
	return &tag, nil
}

// Delete removes the tag and every article association in one transaction.
// Existing associations never block the delete; the relation rows are owned
// by the join table and are simply severed.
func (r *tagRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var tag models.Tag
		if err := tx.First(&tag, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Not found")
			}
			return err
		}
		if err := tx.Exec("DELETE FROM article_tags WHERE tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&tag).Error
	})
}
