package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsafeOutput is returned when the output path is one the tool refuses
// to wipe.
var ErrUnsafeOutput = errors.New("refusing to delete output path")

// checkOutputDir rejects output paths whose removal would destroy more than
// a previous build: the file-system root, the working directory, the home
// directory or any of their parents, and any directory holding the input.
func checkOutputDir(output, input string) error {
	absOut, err := filepath.Abs(output)
	if err != nil {
		return &FileSystemError{Op: "guard", Path: output, Err: err}
	}
	absIn, err := filepath.Abs(input)
	if err != nil {
		return &FileSystemError{Op: "guard", Path: input, Err: err}
	}

	unsafe := func(reason string) error {
		return &FileSystemError{Op: "guard", Path: output, Err: fmt.Errorf("%w: %s", ErrUnsafeOutput, reason)}
	}

	if absOut == filepath.VolumeName(absOut)+string(filepath.Separator) {
		return unsafe("it is the file-system root")
	}
	if cwd, err := os.Getwd(); err == nil && within(cwd, absOut) {
		return unsafe("it is or contains the current working directory")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" && within(filepath.Clean(home), absOut) {
		return unsafe("it is or contains the home directory")
	}
	if within(absIn, absOut) {
		return unsafe("it contains the input " + input)
	}
	return nil
}

// within reports whether path equals dir or lies below it.
func within(path, dir string) bool {
	if path == dir {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(dir, string(filepath.Separator))+string(filepath.Separator))
}
