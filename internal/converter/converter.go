package converter

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/Devon-White/openssg/internal/writer"
)

// ErrUnsupported is returned when a single input file is not a text or
// markdown document.
var ErrUnsupported = errors.New("unsupported file type, expected .txt or .md")

// ErrDuplicateOutput is returned when two sources would be written to the
// same HTML file.
var ErrDuplicateOutput = errors.New("sources share an output file")

// ConversionError reports a failure to discover, read, render or write a
// source document.
type ConversionError struct {
	Path string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("converting %s: %v", e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Converter turns source documents into HTML files.
type Converter struct {
	logger *log.Logger
	md     goldmark.Markdown
}

// New creates a Converter that logs through logger.
func New(logger *log.Logger) *Converter {
	return &Converter{
		logger: logger,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// Render writes one HTML document per source into outDir. Each stylesheet
// link is added to every document, in the given order.
func (c *Converter) Render(ctx context.Context, sources []Source, outDir string, stylesheets []string) error {
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := os.ReadFile(src.Path)
		if err != nil {
			return &ConversionError{Path: src.Path, Err: err}
		}

		pg, err := c.renderPage(src, data)
		if err != nil {
			return &ConversionError{Path: src.Path, Err: err}
		}

		html, err := buildDocument(pg, stylesheets)
		if err != nil {
			return &ConversionError{Path: src.Path, Err: fmt.Errorf("building document: %w", err)}
		}

		path, err := writer.WriteDocument(outDir, src.Rel, html)
		if err != nil {
			return &ConversionError{Path: src.Path, Err: err}
		}
		c.logger.Debug("rendered", "source", src.Path, "output", path)
	}
	return nil
}

// page is a rendered document body with its title.
type page struct {
	Title string
	Body  string
}

func (c *Converter) renderPage(src Source, data []byte) (page, error) {
	switch src.Kind() {
	case KindMarkdown:
		return c.renderMarkdown(src, data)
	case KindText:
		return renderText(src, data), nil
	}
	return page{}, ErrUnsupported
}
