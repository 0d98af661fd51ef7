package command

import (
	"fmt"

	"github.com/sandevgo/quizzer/internal/core"
	"github.com/sandevgo/quizzer/internal/service/ui"
)

// ResponseFormatter builds the text lines commands print.
type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) accent(v any) string {
	return ui.Colorize(fmt.Sprint(v), core.StyleAccent)
}

// Entry is a list line: "[id]: question".
func (f *ResponseFormatter) Entry(q core.Quiz) string {
	return fmt.Sprintf("[%s]: %s", f.accent(q.ID), q.Question)
}

// Detail is "[id]: question => answer".
func (f *ResponseFormatter) Detail(q core.Quiz) string {
	return fmt.Sprintf("[%s]: %s %s %s", f.accent(q.ID), q.Question, f.accent("=>"), q.Answer)
}

func (f *ResponseFormatter) Added(q core.Quiz) string {
	return fmt.Sprintf("%s: %s %s %s", f.accent("Added"), q.Question, f.accent("=>"), q.Answer)
}

func (f *ResponseFormatter) Changed(q core.Quiz) string {
	return fmt.Sprintf("Quiz %s changed to: %s %s %s", f.accent(q.ID), q.Question, f.accent("=>"), q.Answer)
}

func (f *ResponseFormatter) Deleted(id int64) string {
	return fmt.Sprintf("Deleted quiz %s.", f.accent(id))
}

// Usage is one help line: "\tusage - description".
func (f *ResponseFormatter) Usage(cmd core.Command) string {
	return fmt.Sprintf("\t%s - %s", ui.UsageStyle.Render(cmd.Usage()), cmd.Description())
}
