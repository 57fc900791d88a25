package memory

// DefaultFacts is the built-in fact table.
var DefaultFacts = map[string]string{
	"total skills":     "There are over 1,000 published skills.",
	"skills":           "There are over 1,000 published skills.",
	"mentors":          "There are 50 mentors.",
	"devices claimed":  "There have been 500 devices claimed so far.",
	"echos claimed":    "There have been 500 devices claimed so far.",
	"current students": "There are 120 current students in the program.",
	"students":         "There are 120 current students in the program.",
}
