package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Defaults(t *testing.T) {
	opts := NewOptions("docs", "", nil)

	assert.Equal(t, "docs", opts.Input())
	assert.False(t, opts.HasOutput())
	assert.Equal(t, DefaultOutputDir, opts.OutputDir())
	assert.NotNil(t, opts.Stylesheets())
	assert.Empty(t, opts.Stylesheets())
}

func TestOptions_StylesheetsAreCopied(t *testing.T) {
	links := []string{"a.css", "b.css"}
	opts := NewOptions("docs", "out", links)
	links[0] = "x.css"

	got := opts.Stylesheets()
	assert.Equal(t, []string{"a.css", "b.css"}, got)

	got[1] = "y.css"
	assert.Equal(t, []string{"a.css", "b.css"}, opts.Stylesheets())
	assert.Equal(t, "out", opts.OutputDir())
}
