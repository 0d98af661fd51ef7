package core

import "context"

// Style is a presentation hint passed to the Console sink.
type Style int

const (
	StylePlain Style = iota
	StyleAccent
	StyleSuccess
	StyleFailure
	StylePrompt
)

// Prompter asks the user a single question and waits for one answer.
// Only one exchange can be pending at a time.
type Prompter interface {
	Ask(ctx context.Context, prompt string) (string, error)
	// AskPrefilled behaves like Ask but offers initial as editable input
	// when the terminal supports it.
	AskPrefilled(ctx context.Context, prompt, initial string) (string, error)
}

// Console is the fire-and-forget output sink.
type Console interface {
	Print(text string, style Style)
	Banner(text string, style Style)
	Error(msg string)
}
