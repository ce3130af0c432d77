package document

import "strings"

// Part is a run of paragraphs under the nearest preceding markdown heading.
type Part struct {
	Heading string
	Body    string
}

// Split breaks content into parts at markdown headings. Paragraphs are
// separated by blank lines; a paragraph starting with "#" opens a new part
// and its first line becomes the heading.
func Split(content string) []Part {
	var parts []Part
	var body strings.Builder
	heading := ""
	started := false

	flush := func() {
		if started || body.Len() > 0 {
			parts = append(parts, Part{Heading: heading, Body: body.String()})
		}
		body.Reset()
	}

	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if strings.HasPrefix(para, "#") {
			flush()
			lines := strings.SplitN(para, "\n", 2)
			heading = strings.TrimSpace(strings.TrimLeft(lines[0], "#"))
			started = true
			if len(lines) == 1 {
				continue
			}
			para = strings.TrimSpace(lines[1])
		}

		if body.Len() > 0 {
			body.WriteString("\n\n")
		}
		body.WriteString(para)
	}
	flush()

	return parts
}

// Outline returns the distinct headings of content in order, for use as
// section titles.
func Outline(content string) []string {
	var titles []string
	seen := map[string]bool{}
	for _, p := range Split(content) {
		if p.Heading == "" || seen[p.Heading] {
			continue
		}
		seen[p.Heading] = true
		titles = append(titles, p.Heading)
	}
	return titles
}
