package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sant0-9/itabs/internal/actions"
	"github.com/sant0-9/itabs/internal/assistant"
	"github.com/sant0-9/itabs/internal/config"
	"github.com/sant0-9/itabs/internal/document"
)

type state struct {
	// Config
	config *config.Config

	// Guide draft
	guide      *document.Guide
	guideMod   time.Time
	lastImport *document.Imported

	// Chat
	input       textinput.Model
	transcript  viewport.Model
	typing      spinner.Model
	chatHistory []assistant.Message

	// Offered to the user
	actions      []actions.Action
	quickReplies []string

	// Notifications
	toast    *activeToast
	toastSeq int
	notice   string

	// Error view
	err error
}

type activeToast struct {
	id int
	assistant.Toast
}

func newState(cfg *config.Config, guide *document.Guide) *state {
	input := textinput.New()
	input.Placeholder = "Ask anything, or /help for commands..."
	input.CharLimit = 500
	input.Width = 60

	typing := spinner.New()
	typing.Spinner = spinner.MiniDot
	typing.Style = styleTyping

	return &state{
		config:     cfg,
		guide:      guide,
		input:      input,
		transcript: viewport.New(70, 10),
		typing:     typing,
	}
}
