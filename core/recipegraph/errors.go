package recipegraph

import "fmt"

// MalformedReferenceError is returned when an item reference has no bracketed
// "<namespace:id>" token.
type MalformedReferenceError struct {
	Ref string
}

func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("malformed item reference %q", e.Ref)
}

// RecipeNotFoundError is returned when a recipe id is neither atomic nor present in
// the record store.
type RecipeNotFoundError struct {
	ID string
}

func (e *RecipeNotFoundError) Error() string {
	return fmt.Sprintf("recipe %q not found", e.ID)
}

// UnsupportedOperationError is returned for operations the graph does not implement.
type UnsupportedOperationError struct {
	Op string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation: %s", e.Op)
}
