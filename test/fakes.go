// Package test holds fakes shared by package tests.
package test

import (
	"context"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"github.com/sandevgo/quizzer/internal/core"
)

// Prompter answers prompts from a script. Respond, when set, takes precedence
// over Answers; once both are exhausted prompts fail with core.ErrAborted.
type Prompter struct {
	mu       sync.Mutex
	Answers  []string
	Respond  func(prompt string) (string, error)
	Prompts  []string
	Prefills []string
}

func NewPrompter(answers ...string) *Prompter {
	return &Prompter{Answers: answers}
}

func (p *Prompter) Ask(ctx context.Context, prompt string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	prompt = ansi.Strip(prompt)
	p.Prompts = append(p.Prompts, prompt)
	if p.Respond != nil {
		return p.Respond(prompt)
	}
	if len(p.Answers) == 0 {
		return "", core.ErrAborted
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer, nil
}

func (p *Prompter) AskPrefilled(ctx context.Context, prompt, initial string) (string, error) {
	p.mu.Lock()
	p.Prefills = append(p.Prefills, initial)
	p.mu.Unlock()
	return p.Ask(ctx, prompt)
}

type LineKind string

const (
	KindPrint  LineKind = "print"
	KindBanner LineKind = "banner"
	KindError  LineKind = "error"
)

type Line struct {
	Kind  LineKind
	Text  string
	Style core.Style
}

// Console records everything written to it with ANSI sequences stripped.
type Console struct {
	mu    sync.Mutex
	Lines []Line
}

func NewConsole() *Console {
	return &Console{}
}

func (c *Console) Print(text string, style core.Style) {
	c.add(Line{Kind: KindPrint, Text: ansi.Strip(text), Style: style})
}

func (c *Console) Banner(text string, style core.Style) {
	c.add(Line{Kind: KindBanner, Text: ansi.Strip(text), Style: style})
}

func (c *Console) Error(msg string) {
	c.add(Line{Kind: KindError, Text: ansi.Strip(msg)})
}

func (c *Console) add(l Line) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Lines = append(c.Lines, l)
}

// Of returns the texts of every line of the given kind.
func (c *Console) Of(kind LineKind) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []string
	for _, l := range c.Lines {
		if l.Kind == kind {
			out = append(out, l.Text)
		}
	}
	return out
}

// String joins printed lines, ignoring banners and errors.
func (c *Console) String() string {
	return strings.Join(c.Of(KindPrint), "\n")
}

func (c *Console) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Lines = nil
}
