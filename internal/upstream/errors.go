package upstream

import "fmt"

// Error is a non-success or malformed response from the provider API. It
// carries the upstream status and a bounded slice of the body so handlers
// can surface both.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("provider API error %d: %s", e.StatusCode, e.Body)
}
