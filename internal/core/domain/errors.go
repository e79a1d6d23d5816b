package domain

import "errors"

var (
	// ErrBikeNotFound is returned when a delete targets an id that is not
	// present in the bike table.
	ErrBikeNotFound = errors.New("bike does not exist")

	// ErrCommentCreate covers every failure inside comment creation,
	// including the duplicate-author check. Callers get no detail on which
	// rule was violated.
	ErrCommentCreate = errors.New("failed to create the comment")
)
