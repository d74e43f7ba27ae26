package cmd

import (
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/Devon-White/openssg/internal/config"
)

// newLogger returns the progress logger. Setting OPENSSG_DEBUG to a true
// value enables debug output.
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if debug, _ := strconv.ParseBool(os.Getenv("OPENSSG_DEBUG")); debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: config.ProgramName,
		Level:  level,
	})
}
