package goalstore

import (
	"errors"
	"fmt"
)

// ErrDashboardUnavailable marks the optional dashboard aggregate endpoint as
// absent or malformed. Callers degrade to local computation and never
// surface this to the user.
var ErrDashboardUnavailable = errors.New("dashboard aggregate unavailable")

// StatusError is a non-success HTTP response from GoalStore.
type StatusError struct {
	StatusCode int
	Method     string
	Path       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

// IsNotFound reports whether err is a 404 from GoalStore.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == 404
}
