package category

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("category not found")
	ErrNameTaken = errors.New("category name already exists")
)

// ArticlesAttachedError blocks deletion while articles still reference the
// category. Count is reported to the client.
type ArticlesAttachedError struct {
	Count int
}

func (e *ArticlesAttachedError) Error() string {
	return fmt.Sprintf("cannot delete category: %d article(s) still attached", e.Count)
}
