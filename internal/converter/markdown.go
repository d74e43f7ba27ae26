package converter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

type frontMatter struct {
	Title string `yaml:"title"`
}

// renderMarkdown converts a markdown document. A title in the YAML front
// matter takes precedence over the file name.
func (c *Converter) renderMarkdown(src Source, data []byte) (page, error) {
	var meta frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return page{}, fmt.Errorf("parse frontmatter: %w", err)
	}

	var buf bytes.Buffer
	if err := c.md.Convert(body, &buf); err != nil {
		return page{}, fmt.Errorf("markdown render: %w", err)
	}

	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = baseTitle(src.Path)
	}
	return page{Title: title, Body: buf.String()}, nil
}
