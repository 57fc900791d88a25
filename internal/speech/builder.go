package speech

// PlainText wraps s as a plain-text output.
func PlainText(s string) Output {
	return Output{Type: TypePlainText, Speech: s}
}

// SSML wraps s as an SSML output. The <speak> envelope is added on render.
func SSML(s string) Output {
	return Output{Type: TypeSSML, Speech: s}
}

// Normalize converts any accepted speech form into an Output.
// An Output with no type is treated as plain text.
func Normalize[T Content](c T) Output {
	switch v := any(c).(type) {
	case Output:
		if v.Type == "" {
			v.Type = TypePlainText
		}
		return v
	case string:
		return PlainText(v)
	}
	return Output{Type: TypePlainText}
}

// Tell builds a terminal response: speak, then close the session.
func Tell[S Content](speech S) Response {
	return Response{
		Kind:             KindTell,
		Speech:           Normalize(speech),
		ShouldEndSession: true,
	}
}

// Ask speaks and keeps the session open, using reprompt if the user stays silent.
func Ask[S, R Content](speech S, reprompt R) Response {
	r := Normalize(reprompt)
	return Response{
		Kind:     KindAsk,
		Speech:   Normalize(speech),
		Reprompt: &r,
	}
}

// AskWithCard is Ask plus a simple card.
func AskWithCard[S, R Content](speech S, reprompt R, cardTitle, cardContent string) Response {
	resp := Ask(speech, reprompt)
	resp.Kind = KindAskWithCard
	resp.Card = &Card{Title: cardTitle, Content: cardContent}
	return resp
}
