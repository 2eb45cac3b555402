// Package domain defines domain-level errors for the articles feature.
package domain

import "errors"

// Domain errors for article operations.
var (
	// ErrArticleExists indicates that an article with the given title already exists.
	ErrArticleExists = errors.New("article already there !")

	// ErrArticleNotFound indicates that no article was found with the given id.
	ErrArticleNotFound = errors.New("article not found !")
)
