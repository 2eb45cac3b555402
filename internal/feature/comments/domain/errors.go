// Package domain defines domain-level errors for the comments feature.
package domain

import "errors"

// Domain errors for comment operations.
var (
	// ErrDuplicateComment indicates that an identical comment was already
	// left on the same article.
	ErrDuplicateComment = errors.New("your comment already sent !")

	// ErrCommentNotFound indicates that no comment was found with the given id.
	ErrCommentNotFound = errors.New("comment not found !")

	// ErrArticleNotFound indicates that the target article does not exist,
	// so no comment can be attached to it.
	ErrArticleNotFound = errors.New("article not found !")
)
