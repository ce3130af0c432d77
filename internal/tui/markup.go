package tui

import (
	"regexp"
	"strings"
)

// Assistant messages carry a small HTML subset: <br> line breaks and
// <strong> emphasis.

var (
	strongRe = regexp.MustCompile(`(?s)<strong>(.*?)</strong>`)
	breakRe  = regexp.MustCompile(`(?i)<br\s*/?>`)
	tagRe    = regexp.MustCompile(`</?[a-zA-Z][^>]*>`)
)

// renderMarkup turns message markup into styled terminal text.
func renderMarkup(s string) string {
	s = strongRe.ReplaceAllStringFunc(s, func(m string) string {
		inner := strongRe.FindStringSubmatch(m)[1]
		return styleStrong.Render(inner)
	})
	return plainMarkup(s)
}

// plainMarkup strips the markup, keeping line breaks.
func plainMarkup(s string) string {
	s = breakRe.ReplaceAllString(s, "\n")
	s = tagRe.ReplaceAllString(s, "")
	return s
}

// wrapText wraps each line of text to maxWidth, preserving words and
// explicit line breaks.
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 60
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = wrapLine(line, maxWidth)
	}
	return strings.Join(lines, "\n")
}

func wrapLine(line string, maxWidth int) string {
	if len([]rune(line)) <= maxWidth {
		return line
	}

	var result strings.Builder
	lineLen := 0
	for i, word := range strings.Fields(line) {
		n := len([]rune(word))
		if i > 0 {
			if lineLen+1+n > maxWidth {
				result.WriteString("\n")
				lineLen = 0
			} else {
				result.WriteString(" ")
				lineLen++
			}
		}
		result.WriteString(word)
		lineLen += n
	}
	return result.String()
}
