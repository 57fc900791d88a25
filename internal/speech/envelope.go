package speech

// Version is the response format version sent back to the platform.
const Version = "1.0"

const cardTypeSimple = "Simple"

// ResponseEnvelope is the outbound wire object.
type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes"`
	Response          ResponseBody   `json:"response"`
}

type ResponseBody struct {
	OutputSpeech     OutputSpeech `json:"outputSpeech"`
	Reprompt         *Reprompt    `json:"reprompt,omitempty"`
	Card             *CardBody    `json:"card,omitempty"`
	ShouldEndSession bool         `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	SSML string `json:"ssml,omitempty"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

type CardBody struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Envelope renders resp together with the session attributes to echo.
// Nil attributes are sent as an empty object.
func Envelope(resp Response, attributes map[string]any) ResponseEnvelope {
	if attributes == nil {
		attributes = map[string]any{}
	}
	body := ResponseBody{
		OutputSpeech:     renderOutput(resp.Speech),
		ShouldEndSession: resp.ShouldEndSession,
	}
	if resp.Reprompt != nil {
		body.Reprompt = &Reprompt{OutputSpeech: renderOutput(*resp.Reprompt)}
	}
	if resp.Card != nil {
		body.Card = &CardBody{
			Type:    cardTypeSimple,
			Title:   resp.Card.Title,
			Content: resp.Card.Content,
		}
	}

	return ResponseEnvelope{
		Version:           Version,
		SessionAttributes: attributes,
		Response:          body,
	}
}

func renderOutput(o Output) OutputSpeech {
	if o.Type == TypeSSML {
		return OutputSpeech{Type: string(TypeSSML), SSML: "<speak>" + o.Speech + "</speak>"}
	}
	return OutputSpeech{Type: string(TypePlainText), Text: o.Speech}
}
