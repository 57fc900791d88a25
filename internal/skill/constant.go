package skill

// Intent names.
const (
	IntentFacts  = "factsIntent"
	IntentStop   = "AMAZON.StopIntent"
	IntentCancel = "AMAZON.CancelIntent"
	IntentHelp   = "AMAZON.HelpIntent"
)

// SlotItem is the slot carrying the item the user asked about.
const SlotItem = "Item"

// Spoken text.
const (
	LaunchSpeech   = "Hello. I'm Robot Aaron, and I am in, a tube.  You can ask me a question about the alexa project like, what's up with mentors? ... Now, what can I help you with."
	LaunchReprompt = "For instructions on what you can say, please say help me."

	FactsReprompt      = "I can get you details about total skills, mentors, devices claimed, or current students ... Now, what would you like to know about?"
	FactsCardPrefix    = "Details for "
	FactsUnknownItem   = "I'm sorry, I currently do not know the details for %s. What else can I help with?"
	FactsUnknownDetail = "I'm sorry, I currently do not know that detail. What else can I help with?"

	StopSpeech   = "Goodbye from Aaron in a tube."
	CancelSpeech = "Cheers!"

	HelpSpeech   = "Hello. You can ask me questions about the alexa project such as, how many skills have been published, or, you can say exit...  Now, what can I help you with?"
	HelpReprompt = "You can say things like, how many skills have been published, or you can say exit... Now, what can I help you with?"

	FallbackSpeech = "Sorry, I didn't catch that. You can ask me about total skills, mentors, devices claimed, or current students. What would you like to know about?"
)

// Log prefixes
const (
	LogPrefixNew    = "internal.skill.usecase.New"
	LogPrefixHandle = "internal.skill.usecase.Handle"
	LogPrefixFacts  = "internal.skill.usecase.handleFacts"
)
