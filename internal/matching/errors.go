package matching

import "fmt"

// InvalidRequestError represents a structural violation of the matching input
// contract. Surfaced immediately; no partial processing happens.
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Message)
}
