package router

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// Error messages
const (
	ErrMsgNoHandler = "no handler registered for intent"
)
