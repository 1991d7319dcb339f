package types

import "errors"

// Classified failure reasons. Stage errors wrap one of these so callers can
// branch with errors.Is without parsing messages.
var (
	ErrCredentialMissing = errors.New("credential missing")
	ErrNotFound          = errors.New("not found")
	ErrToolFailure       = errors.New("external tool failure")
)
