package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
)

// Toggle returns the opposite status. draft and published are the only two
// states; there is no archival state.
func (s ArticleStatus) Toggle() ArticleStatus {
	if s == StatusDraft {
		return StatusPublished
	}
	return StatusDraft
}

// JSONArray is the article's structured content payload. It is schema-free:
// the server stores and returns it verbatim and never interprets the blocks.
type JSONArray []interface{}

func (a JSONArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *JSONArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONArray{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSONArray: %T", value)
	}
	return json.Unmarshal(b, a)
}

func (JSONArray) GormDataType() string {
	return "jsonb"
}

type Article struct {
	ID        string        `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string        `json:"title"`
	Summary   string        `json:"summary"`
	Image     *string       `json:"image"`
	Status    ArticleStatus `gorm:"type:text;index" json:"status"`
	Value     JSONArray     `json:"value"`
	HTML      string        `gorm:"column:html" json:"html"`
	Tags      []Tag         `gorm:"many2many:article_tags;constraint:OnDelete:CASCADE" json:"tags"`
	CreatedAt time.Time     `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// TagNames returns the names of the associated tags in storage order.
func (a *Article) TagNames() []string {
	names := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		names = append(names, t.Name)
	}
	return names
}

// TagIDs returns the ids of the associated tags in storage order.
func (a *Article) TagIDs() []string {
	ids := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}
