package model

// Request types delivered by the voice platform.
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// RequestEnvelope is the inbound event forwarded by the platform.
type RequestEnvelope struct {
	Version string  `json:"version"`
	Session Session `json:"session"`
	Request Request `json:"request"`
}

// Session describes the conversation the request belongs to.
type Session struct {
	New         bool           `json:"new"`
	SessionID   string         `json:"sessionId"`
	Application Application    `json:"application"`
	Attributes  map[string]any `json:"attributes,omitempty"`
	User        User           `json:"user"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID string `json:"userId"`
}

// Request is the typed part of the envelope.
// Intent is only set for IntentRequest; Reason only for SessionEndedRequest.
type Request struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Timestamp string  `json:"timestamp,omitempty"`
	Locale    string  `json:"locale,omitempty"`
	Intent    *Intent `json:"intent,omitempty"`
	Reason    string  `json:"reason,omitempty"`
}

// Intent is a recognized user purpose with its slots, keyed by slot name.
type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

// Slot is a named intent parameter. Value is nil when nothing was recognized;
// a recognized empty string is kept as a non-nil pointer.
type Slot struct {
	Name  string  `json:"name"`
	Value *string `json:"value,omitempty"`
}

// NewSlot builds a slot carrying value.
func NewSlot(name, value string) Slot {
	return Slot{Name: name, Value: &value}
}
