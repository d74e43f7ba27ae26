package converter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Devon-White/openssg/internal/writer"
)

// Kind is the format of a source document.
type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindMarkdown
)

// Source is a document found under the input path.
type Source struct {
	Path string // as found on disk
	Rel  string // relative to the input root; the base name for a single-file input
}

// Kind returns the document format, derived from the file extension.
func (s Source) Kind() Kind {
	return kindOf(s.Path)
}

func kindOf(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return KindText
	case ".md", ".markdown":
		return KindMarkdown
	}
	return KindUnknown
}

// Discover returns the source documents under input, sorted by relative path.
// A file input must itself be a supported document. Hidden files and
// directories inside a folder input are skipped, and so is outDir when it
// lies inside input. Two sources that would render to the same HTML file
// are rejected.
func (c *Converter) Discover(input, outDir string) ([]Source, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, &ConversionError{Path: input, Err: err}
	}

	if !info.IsDir() {
		if kindOf(input) == KindUnknown {
			return nil, &ConversionError{Path: input, Err: ErrUnsupported}
		}
		return []Source{{Path: input, Rel: filepath.Base(input)}}, nil
	}

	skip := ""
	if outDir != "" {
		if abs, err := filepath.Abs(outDir); err == nil {
			skip = abs
		}
	}

	var sources []Source
	err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != input && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != input && skip != "" {
				if abs, err := filepath.Abs(path); err == nil && abs == skip {
					c.logger.Debug("skipping output directory", "path", path)
					return filepath.SkipDir
				}
			}
			return nil
		}
		if !d.Type().IsRegular() || kindOf(path) == KindUnknown {
			return nil
		}
		rel, err := filepath.Rel(input, path)
		if err != nil {
			return err
		}
		sources = append(sources, Source{Path: path, Rel: rel})
		return nil
	})
	if err != nil {
		return nil, &ConversionError{Path: input, Err: err}
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Rel < sources[j].Rel })

	if err := checkCollisions(sources); err != nil {
		return nil, err
	}
	return sources, nil
}

// checkCollisions fails when two sources map to the same output file,
// e.g. notes.txt and notes.md.
func checkCollisions(sources []Source) error {
	seen := make(map[string]Source, len(sources))
	for _, src := range sources {
		out, err := writer.OutputPath("", src.Rel)
		if err != nil {
			return &ConversionError{Path: src.Path, Err: err}
		}
		if prev, ok := seen[out]; ok {
			return &ConversionError{
				Path: src.Path,
				Err:  fmt.Errorf("%w: %s and %s both render to %s", ErrDuplicateOutput, prev.Path, src.Path, out),
			}
		}
		seen[out] = src
	}
	return nil
}
