package services

import (
	"errors"
	"fmt"
)

// ErrRouteInfeasible marks a trip that cannot be completed: at some
// point along the route no fuel station lies within the deviation
// radius of any sample reachable on the remaining fuel. It is a domain
// outcome, distinct from upstream provider failures.
var ErrRouteInfeasible = errors.New("route infeasible: no fuel station within reachable range")

// DependencyError wraps a failure of an external collaborator so the
// API layer can name the failing dependency without inspecting the
// underlying error chain.
type DependencyError struct {
	Dependency string
	Err        error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Dependency, e.Err)
}

func (e *DependencyError) Unwrap() error { return e.Err }
