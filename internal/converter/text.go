package converter

import (
	"html"
	"path/filepath"
	"regexp"
	"strings"
)

var blankLines = regexp.MustCompile(`\n[ \t]*\n`)

// renderText converts a plain-text document. The first line is the title
// when it is followed by two blank lines; the rest is split into paragraphs
// on blank lines.
func renderText(src Source, data []byte) page {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimPrefix(text, "\ufeff")

	title, rest := splitTitle(text)

	var sb strings.Builder
	if title != "" {
		sb.WriteString("<h1>" + html.EscapeString(title) + "</h1>\n")
	}
	for _, para := range blankLines.Split(rest, -1) {
		lines := strings.Fields(strings.ReplaceAll(para, "\n", " "))
		if len(lines) == 0 {
			continue
		}
		sb.WriteString("<p>" + html.EscapeString(strings.Join(lines, " ")) + "</p>\n")
	}

	if title == "" {
		title = baseTitle(src.Path)
	}
	return page{Title: title, Body: sb.String()}
}

func splitTitle(text string) (title, rest string) {
	lines := strings.SplitN(text, "\n", 4)
	if len(lines) < 3 {
		return "", text
	}
	first := strings.TrimSpace(lines[0])
	if first == "" || strings.TrimSpace(lines[1]) != "" || strings.TrimSpace(lines[2]) != "" {
		return "", text
	}
	if len(lines) == 4 {
		rest = lines[3]
	}
	return first, rest
}

// baseTitle returns the file name without its extension.
func baseTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
