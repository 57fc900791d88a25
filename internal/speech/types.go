package speech

// OutputType tags how the platform should render speech.
type OutputType string

const (
	TypePlainText OutputType = "PlainText"
	TypeSSML      OutputType = "SSML"
)

// Output is a speech payload: the text to speak and how to interpret it.
type Output struct {
	Type   OutputType
	Speech string
}

// Content is anything the builders accept as speech: a bare string
// (spoken as plain text) or a structured Output.
type Content interface {
	string | Output
}

// Kind identifies which of the three response shapes was built.
type Kind string

const (
	KindTell        Kind = "tell"
	KindAsk         Kind = "ask"
	KindAskWithCard Kind = "ask_with_card"
)

// Card is the visual companion shown on devices with a screen.
type Card struct {
	Title   string
	Content string
}

// Response is the single result of a dispatch.
// Reprompt is nil for Tell; Card is nil unless Kind is KindAskWithCard.
type Response struct {
	Kind             Kind
	Speech           Output
	Reprompt         *Output
	Card             *Card
	ShouldEndSession bool
}
