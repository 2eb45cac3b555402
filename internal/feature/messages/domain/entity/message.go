// Package entity defines the domain entities for the messages feature.
package entity

import "time"

// StatusPending is the initial status of a contact message.
// Status is a free-form string; no transition rules are enforced.
const StatusPending = "Pending"

// Message represents a visitor contact message sent through the site.
type Message struct {
	// ID is the unique identifier for the message.
	ID uint `gorm:"primaryKey" json:"id"`

	// Names is the sender's display name.
	Names string `gorm:"size:255;not null" json:"names"`

	// Email is the sender's contact address.
	Email string `gorm:"size:255;not null" json:"email"`

	// Body is the message text, checked for uniqueness at creation.
	Body string `gorm:"column:message;type:text;not null" json:"message"`

	// Status tracks handling of the message, starting at "Pending".
	Status string `gorm:"size:64;not null;default:Pending" json:"status"`

	// CreatedAt is the timestamp when the message was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the message was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
