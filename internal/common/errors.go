// Package common holds the sentinel errors shared across services,
// repositories and handlers, so each layer can classify failures with
// errors.Is instead of matching strings.
package common

import "errors"

var (
	// ErrValidation — a required field is missing or malformed
	ErrValidation = errors.New("invalid request")
	// ErrAlreadyLiked — the (user, target) pair already has a like;
	// expected under concurrent duplicates, never a crash
	ErrAlreadyLiked = errors.New("already liked")
	// ErrTargetNotFound — the like target does not exist
	ErrTargetNotFound = errors.New("like target not found")
	// ErrPostNotFound — referenced post does not exist
	ErrPostNotFound = errors.New("post not found")
	// ErrParentNotFound — referenced parent comment does not exist or
	// belongs to a different post
	ErrParentNotFound = errors.New("parent comment not found")
	// ErrCommentNotFound — referenced comment does not exist
	ErrCommentNotFound = errors.New("comment not found")
	// ErrUserNotFound — referenced user does not exist
	ErrUserNotFound = errors.New("user not found")
	// ErrStoreUnavailable — the storage layer failed; propagated, never
	// retried here
	ErrStoreUnavailable = errors.New("store unavailable")
)
