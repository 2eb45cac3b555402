// Package entity defines the domain entities for the comments feature.
package entity

import "time"

// Comment represents a visitor comment left on a blog article.
type Comment struct {
	// ID is the unique identifier for the comment.
	ID uint `gorm:"primaryKey" json:"id"`

	// Names is the commenter's display name.
	Names string `gorm:"size:255;not null" json:"names"`

	// Email is the commenter's contact address.
	Email string `gorm:"size:255;not null" json:"email"`

	// Content is the comment text.
	Content string `gorm:"type:text;not null" json:"content"`

	// ArticleID is the back-reference to the owning article.
	ArticleID uint `gorm:"index;not null" json:"article"`

	// CreatedAt is the timestamp when the comment was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the comment was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
