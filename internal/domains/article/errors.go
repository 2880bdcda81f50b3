package article

import "errors"

var (
	ErrNotFound = errors.New("article not found")

	// ErrInvalidCategory rejects a write naming a category that does not
	// exist.
	ErrInvalidCategory = errors.New("category does not exist")

	// ErrCategoryNotFound rejects a listing filtered on a category that
	// does not exist.
	ErrCategoryNotFound = errors.New("category not found")
)
