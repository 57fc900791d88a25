package fact

import "errors"

var (
	ErrEmptySource    = errors.New("fact source has no entries")
	ErrInvalidRow     = errors.New("fact row must have a key and a value")
	ErrUnknownSource  = errors.New("unknown fact source")
	ErrMissingSetting = errors.New("fact source setting is missing")
	ErrDuplicateKey   = errors.New("fact source has duplicate keys")
)
