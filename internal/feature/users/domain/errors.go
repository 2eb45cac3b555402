// Package domain defines domain-level errors for the users feature.
package domain

import "errors"

// Domain errors for user operations.
// These errors represent business logic failures and should be handled appropriately by upper layers.
var (
	// ErrEmailTaken indicates that a user with the given email already exists.
	// This is returned during registration when attempting to create a duplicate user.
	ErrEmailTaken = errors.New("email already taken")

	// ErrUserNotFound indicates that no user was found with the given criteria.
	// This is returned during login or user lookup operations.
	ErrUserNotFound = errors.New("user not found")

	// ErrWrongPassword indicates that the supplied password does not match the stored hash.
	ErrWrongPassword = errors.New("wrong password")
)
