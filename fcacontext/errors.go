package fcacontext

import "errors"

// Sentinel errors for fcacontext operations. Callers branch with errors.Is.
var (
	// ErrEmptyDomain is returned by Make when either domain is empty.
	ErrEmptyDomain = errors.New("fcacontext: object and attribute domains must be non-empty")

	// ErrDomainError is returned by Relate/Unrelate when x or y is outside
	// its respective domain.
	ErrDomainError = errors.New("fcacontext: element not in domain")
)
