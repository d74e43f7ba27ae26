package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/Devon-White/openssg/internal/config"
	"github.com/Devon-White/openssg/internal/converter"
)

// ErrNotDirectory is returned when the output path exists but is neither a
// directory nor a symbolic link.
var ErrNotDirectory = errors.New("output path exists and is not a directory")

// FileSystemError reports a failure while preparing the output directory.
type FileSystemError struct {
	Op   string // guard, stat, remove, mkdir
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error { return e.Err }

// DocumentConverter discovers source documents and renders them to HTML.
type DocumentConverter interface {
	Discover(input, outDir string) ([]converter.Source, error)
	Render(ctx context.Context, sources []converter.Source, outDir string, stylesheets []string) error
}

// Run executes a full rebuild: the output directory is wiped and recreated,
// then every source document under the input path is rendered into it.
func Run(ctx context.Context, opts config.Options, conv DocumentConverter, logger *log.Logger) error {
	outDir := opts.OutputDir()
	stylesheets := opts.Stylesheets()

	if err := checkOutputDir(outDir, opts.Input()); err != nil {
		return err
	}

	if !opts.HasOutput() {
		logger.Infof("No output folder given, using %s", outDir)
	}

	logger.Infof("Discovering source documents in %s", opts.Input())
	sources, err := conv.Discover(opts.Input(), outDir)
	if err != nil {
		return err
	}
	logger.Infof("Found %d source documents", len(sources))

	if err := prepareOutputDir(outDir, logger); err != nil {
		return err
	}

	if len(sources) == 0 {
		logger.Warn("No source documents found. Nothing to do.")
		return nil
	}

	if len(stylesheets) > 0 {
		logger.Debug("adding stylesheets", "links", stylesheets)
	}
	if err := conv.Render(ctx, sources, outDir, stylesheets); err != nil {
		return err
	}

	logger.Infof("Done. %d documents written to %s", len(sources), outDir)
	return nil
}

// prepareOutputDir removes whatever directory is at path and creates it
// again. Symbolic links are never followed: a link at path is removed and
// its target is left alone.
func prepareOutputDir(path string, logger *log.Logger) error {
	info, err := os.Lstat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return &FileSystemError{Op: "stat", Path: path, Err: err}
	case info.Mode()&fs.ModeSymlink != 0:
		logger.Debug("removing symbolic link at output path", "path", path)
		if err := os.Remove(path); err != nil {
			return &FileSystemError{Op: "remove", Path: path, Err: err}
		}
	case info.IsDir():
		logger.Infof("Removing existing output directory %s", path)
		if err := os.RemoveAll(path); err != nil {
			return &FileSystemError{Op: "remove", Path: path, Err: err}
		}
	default:
		return &FileSystemError{Op: "stat", Path: path, Err: ErrNotDirectory}
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return &FileSystemError{Op: "mkdir", Path: path, Err: err}
	}
	return nil
}
