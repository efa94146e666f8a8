package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Play errors
	ErrDailyLimitReached = errors.New("daily play limit reached")

	// Question bank errors
	ErrCategoryNotFound = errors.New("category not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrBankEmpty        = errors.New("question bank is empty")

	// Storage errors
	ErrSnapshotNotFound = errors.New("no snapshot stored")
)
