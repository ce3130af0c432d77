package assistant

import (
	"time"

	"github.com/sant0-9/itabs/internal/document"
)

// Role tags a chat entry.
type Role string

const (
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
	RoleSystem    Role = "system"
)

// Message is one chat entry. Content may carry <br> and <strong> markup.
type Message struct {
	Role         Role
	Content      string
	InsightSaved bool
}

// Toast is a short-lived notification.
type Toast struct {
	Title    string
	Message  string
	Duration time.Duration
}

// Sink receives everything the assistant shows the user.
type Sink interface {
	Message(Message)
	Toast(Toast)
	// Refresh signals that the offered actions, the profile or the page
	// changed and should be re-rendered.
	Refresh()
}

// Scheduler runs fn once after d. fn must be invoked on the goroutine that
// drives the Assistant; there is no cancellation.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Page is the guide being authored, as seen by the assistant. Missing values
// read as empty strings.
type Page interface {
	Content() string
	SectionTitles() []string
	SetSectionTitle(i int, title string)
	Field(f document.Field) string
	SetField(f document.Field, v string)
}
