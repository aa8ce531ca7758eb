package resolver

import "fmt"

// ConflictError reports a node selector key whose values disagree between
// the global and service layers. Node selector keys have no specificity
// precedence, so a disagreement is a configuration error the operator must
// fix, not an override the resolver may pick a winner for.
type ConflictError struct {
	// Key is the conflicting node selector key.
	Key string
	// GlobalValue is the value from the global layer.
	GlobalValue string
	// ServiceValue is the value from the service layer.
	ServiceValue string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"node selector conflict on key %q: global layer has %q, service layer has %q",
		e.Key, e.GlobalValue, e.ServiceValue,
	)
}

// MissingImageError reports an image identifier with no product catalog
// entry. The catalog is an external, read-only input, so this is fatal for
// the resolution rather than recoverable by defaulting.
type MissingImageError struct {
	// ID is the requested image identifier.
	ID string
}

func (e *MissingImageError) Error() string {
	return fmt.Sprintf("image %q has no product catalog entry", e.ID)
}

// DuplicateImageError reports an image identifier listed more than once in
// a single resolution.
type DuplicateImageError struct {
	// ID is the duplicated image identifier.
	ID string
}

func (e *DuplicateImageError) Error() string {
	return fmt.Sprintf("image %q is listed more than once", e.ID)
}
