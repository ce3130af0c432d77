package intent

import (
	"strings"

	"github.com/sant0-9/itabs/internal/prompts"
	"github.com/sant0-9/itabs/internal/steps"
)

// Resolver maps free text to canned replies
type Resolver struct {
	responses []prompts.Response
}

// NewResolver creates a resolver over the built-in response table
func NewResolver() *Resolver {
	return &Resolver{
		responses: prompts.Responses(),
	}
}

// Resolve returns the reply content for input at the given step
func (r *Resolver) Resolve(input string, step steps.ID) string {
	return r.Parse(input, step).Reply
}

// Parse matches input against the response table. A response matches when
// its key is contained in the normalized input or the input is contained in
// its key; the first match in table order wins. Empty input never matches.
func (r *Resolver) Parse(input string, step steps.ID) *Intent {
	normalized := strings.ToLower(strings.TrimSpace(input))

	if normalized != "" {
		for _, resp := range r.responses {
			if strings.Contains(normalized, resp.Key) || strings.Contains(resp.Key, normalized) {
				return &Intent{RawPrompt: input, Key: resp.Key, Reply: resp.Reply}
			}
		}
	}

	return &Intent{RawPrompt: input, Reply: fallback(step)}
}

func fallback(step steps.ID) string {
	tips := steps.Get(step).Tips
	bullets := make([]string, len(tips))
	for i, tip := range tips {
		bullets[i] = "• " + tip
	}
	return prompts.Fallback + "<br><br>" + strings.Join(bullets, "<br>")
}
