package skill

import "errors"

var (
	// ErrAuthorization means the request was not addressed to this skill.
	ErrAuthorization        = errors.New("application id does not match this skill")
	ErrUnrecognizedIntent   = errors.New("unrecognized intent")
	ErrUnsupportedRequest   = errors.New("unsupported request type")
	ErrMissingApplicationID = errors.New("application id is required")
)
