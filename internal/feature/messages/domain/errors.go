// Package domain defines domain-level errors for the messages feature.
package domain

import "errors"

// Domain errors for contact message operations.
var (
	// ErrDuplicateMessage indicates that identical message text was already sent.
	ErrDuplicateMessage = errors.New("you already sent this message !")

	// ErrMessageNotFound indicates that no message was found with the given id.
	ErrMessageNotFound = errors.New("message not found!")
)
