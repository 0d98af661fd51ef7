package ui

import (
	"strings"

	"github.com/common-nighthawk/go-figure"
)

// Banner renders text in large figlet letters using the standard font.
func Banner(text string) string {
	// non-strict mode skips characters the font cannot draw
	return strings.TrimRight(figure.NewFigure(text, "", false).String(), "\n")
}
