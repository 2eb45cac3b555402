// Package entity defines the domain entities for the articles feature.
package entity

import (
	"time"

	commententity "blog_backend/internal/feature/comments/domain/entity"
)

// DefaultThumbnail is stored when an article is created without one.
const DefaultThumbnail = "No Image uploaded yet"

// Article represents a blog article with its attached comments.
type Article struct {
	// ID is the unique identifier for the article.
	ID uint `gorm:"primaryKey" json:"id"`

	// Title is checked for uniqueness at creation time.
	Title string `gorm:"size:255;not null" json:"title"`

	// Body is the article content.
	Body string `gorm:"type:text;not null" json:"body"`

	// Thumbnail is the URL of the article's cover image.
	Thumbnail string `gorm:"size:255;not null" json:"thumbnail"`

	// Comments are the comments attached to this article, ordered by id.
	Comments []commententity.Comment `gorm:"foreignKey:ArticleID" json:"comments"`

	// CreatedAt is the timestamp when the article was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the article was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
