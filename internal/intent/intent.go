package intent

// Intent is the canned response chosen for a user's message
type Intent struct {
	// The raw message from the user
	RawPrompt string

	// Key of the matched canned response, empty when the fallback was used
	Key string

	// Reply content, may contain <br> and <strong> markup
	Reply string
}

// Matched reports whether a canned response was found
func (i *Intent) Matched() bool {
	return i.Key != ""
}
