package taxonomy

import "fmt"

// NotFoundError indicates a requested industry taxonomy does not exist.
// Taxonomy sets are configuration; callers should not retry.
type NotFoundError struct {
	IndustryID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("taxonomy not found for industry %q", e.IndustryID)
}

// LoadError represents an error reading or parsing taxonomy data
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("taxonomy load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("taxonomy load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
