package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Fact sources return these
// (optionally wrapped) so callers can tell a missing dataset from an
// unreachable backend:
// - ErrNotFound: the dataset or key does not exist in the backend
// - ErrUnavailable: the backend could not be reached
//
// Client-facing failures use pkg/domain-errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
