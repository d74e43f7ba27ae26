package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputPath maps a source path, relative to the input root, to its HTML
// file under outputDir. The source extension is replaced with .html.
func OutputPath(outputDir string, rel string) (string, error) {
	clean := filepath.Clean(rel)
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("source path %q escapes the output directory", rel)
	}
	clean = strings.TrimSuffix(clean, filepath.Ext(clean)) + ".html"
	return filepath.Join(outputDir, clean), nil
}

// WriteDocument writes an HTML document to disk, mirroring the source's
// relative path under outputDir. It returns the path written.
func WriteDocument(outputDir string, rel string, html []byte) (string, error) {
	path, err := OutputPath(outputDir, rel)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, html, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}
