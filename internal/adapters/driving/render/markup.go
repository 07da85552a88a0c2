// Package render turns assistant reply text into styled terminal output.
//
// Replies use a small inline markup subset (bold, italic) and rely on
// line breaks for their bullet and numbered lists. Rendering is best effort:
// any failure falls back to the raw text.
package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/anirvinkotaru/techassist/internal/logger"
)

// DefaultWidth is the word-wrap width used by TryFormat.
const DefaultWidth = 80

// FormattedText is the result of a formatting attempt.
type FormattedText struct {
	// Text is the styled output, or the raw input when Formatted is false.
	Text string

	// Formatted reports whether markup was rendered.
	Formatted bool
}

// RenderFunc renders markup to terminal output.
type RenderFunc func(text string) (string, error)

// Formatter formats reply text with a render function.
type Formatter struct {
	render RenderFunc
}

// NewFormatter creates a formatter backed by glamour's dark style.
// A renderer that cannot be built makes every Format call fall back.
func NewFormatter(width int) *Formatter {
	if width <= 0 {
		width = DefaultWidth
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logger.Warn("markup renderer unavailable: %v", err)
		return NewFormatterWithFunc(func(string) (string, error) {
			return "", fmt.Errorf("creating renderer: %w", err)
		})
	}
	return NewFormatterWithFunc(r.Render)
}

// NewFormatterWithFunc creates a formatter with a custom render function.
func NewFormatterWithFunc(render RenderFunc) *Formatter {
	return &Formatter{render: render}
}

// Format renders text. It never fails: on error or panic the raw text is
// returned with Formatted set to false.
func (f *Formatter) Format(text string) (out FormattedText) {
	if strings.TrimSpace(text) == "" || f.render == nil {
		return FormattedText{Text: text}
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Debug("markup render panicked: %v", r)
			out = FormattedText{Text: text}
		}
	}()

	rendered, err := f.render(toMarkdown(text))
	if err != nil {
		logger.Debug("markup render failed: %v", err)
		return FormattedText{Text: text}
	}

	return FormattedText{Text: strings.Trim(rendered, "\n"), Formatted: true}
}

var (
	defaultOnce      sync.Once
	defaultFormatter *Formatter
)

// TryFormat formats text with a shared formatter at DefaultWidth.
func TryFormat(text string) FormattedText {
	defaultOnce.Do(func() {
		defaultFormatter = NewFormatter(DefaultWidth)
	})
	return defaultFormatter.Format(text)
}

// bulletPrefix starts an unordered list line in reply text.
const bulletPrefix = "• "

// toMarkdown turns reply text into markdown that keeps its line structure.
// Bullet lines become list items, lists are fenced by blank lines so
// surrounding text is not merged into them, and other adjacent lines get
// hard breaks.
func toMarkdown(text string) string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if strings.HasPrefix(trimmed, bulletPrefix) {
			lines[i] = "- " + strings.TrimPrefix(trimmed, bulletPrefix)
		}
	}

	out := make([]string, 0, len(lines)+4)
	for i, line := range lines {
		if i > 0 {
			prev := lines[i-1]
			if !isBlank(prev) && !isBlank(line) && isListItem(prev) != isListItem(line) {
				out = append(out, "")
			}
		}
		if i < len(lines)-1 && !isBlank(line) && !isBlank(lines[i+1]) &&
			!isListItem(line) && !isListItem(lines[i+1]) {
			line = strings.TrimRight(line, " ") + "  "
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// isListItem reports whether line is a "- " or "N. " list item.
func isListItem(line string) bool {
	line = strings.TrimLeft(line, " ")
	if strings.HasPrefix(line, "- ") {
		return true
	}
	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	return digits > 0 && strings.HasPrefix(line[digits:], ". ")
}
