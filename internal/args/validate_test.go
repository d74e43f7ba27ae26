package args

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messages(res Result) []string {
	out := make([]string, len(res.Diagnostics))
	for i, d := range res.Diagnostics {
		out[i] = d.Message
	}
	return out
}

func TestValidate_Empty(t *testing.T) {
	res := Validate(nil)
	require.False(t, res.Valid())
	assert.Equal(t, []string{MsgNoOption}, messages(res))
}

func TestValidate_MissingInput(t *testing.T) {
	cases := [][]string{
		{"-o", "out"},
		{"-s", "a.css"},
		{"docs"},
		{"-input", "docs"},
		{"--output", "out", "-s", "a.css", "b.css"},
	}
	for _, tokens := range cases {
		res := Validate(tokens)
		require.False(t, res.Valid(), "tokens %q", tokens)
		assert.Equal(t, []string{MsgInputRequired}, messages(res), "tokens %q", tokens)
	}
}

func TestValidate_TrailingSingleValuedFlag(t *testing.T) {
	cases := [][]string{
		{"-i"},
		{"--input"},
		{"-i", "docs", "-o"},
		{"-i", "docs", "--output"},
		{"-i", "docs", "-i"},
	}
	for _, tokens := range cases {
		res := Validate(tokens)
		require.False(t, res.Valid(), "tokens %q", tokens)
		assert.Contains(t, messages(res), MsgMissingArgument, "tokens %q", tokens)
	}
}

func TestValidate_SingleValuedFlagFollowedByFlag(t *testing.T) {
	res := Validate([]string{"-i", "-o", "out"})
	require.False(t, res.Valid())
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, Diagnostic{Position: 0, Flag: "-i", Message: MsgMissingArgument}, res.Diagnostics[0])
}

func TestValidate_EmptyValue(t *testing.T) {
	for _, tokens := range [][]string{
		{"-i", ""},
		{"-i", "docs", "-o", ""},
		{"-i", "docs", "--output", "", "-s", "a.css"},
	} {
		res := Validate(tokens)
		require.False(t, res.Valid(), "tokens %q", tokens)
		assert.Equal(t, []string{MsgMissingArgument}, messages(res), "tokens %q", tokens)
	}
}

func TestValidate_StylesheetWithoutLinks(t *testing.T) {
	for _, tokens := range [][]string{
		{"-i", "docs", "-s"},
		{"-i", "docs", "--stylesheet"},
		{"-i", "docs", "-s", "-o", "out"},
	} {
		res := Validate(tokens)
		require.False(t, res.Valid(), "tokens %q", tokens)
		assert.Equal(t, []string{MsgMissingStylesheet}, messages(res), "tokens %q", tokens)
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	res := Validate([]string{"-o", "-i", "docs", "-s", "--output"})
	require.False(t, res.Valid())
	assert.Equal(t, []Diagnostic{
		{Position: 0, Flag: "-o", Message: MsgMissingArgument},
		{Position: 3, Flag: "-s", Message: MsgMissingStylesheet},
		{Position: 4, Flag: "--output", Message: MsgMissingArgument},
	}, res.Diagnostics)
}

func TestValidate_Valid(t *testing.T) {
	cases := [][]string{
		{"-i", "docs"},
		{"--input", "docs"},
		{"-i", "docs", "-o", "out"},
		{"-i", "docs", "-s", "a.css"},
		{"-s", "a.css", "b.css", "-i", "docs"},
		{"-i", "docs", "-s", "a.css", "b.css", "-o", "out"},
		{"-i", "a", "-i", "b"},
	}
	for _, tokens := range cases {
		res := Validate(tokens)
		assert.True(t, res.Valid(), "tokens %q: %v", tokens, res.Diagnostics)
		assert.NoError(t, res.Err())
	}
}

func TestResult_Err(t *testing.T) {
	err := Validate([]string{"-i"}).Err()
	require.Error(t, err)

	var usageErr *UsageError
	require.True(t, errors.As(err, &usageErr))
	assert.Len(t, usageErr.Diagnostics, 1)
	assert.Equal(t, "invalid arguments: -i: missing option argument", err.Error())
}

func TestDetect(t *testing.T) {
	assert.Equal(t, CommandVersion, Detect([]string{"-v"}))
	assert.Equal(t, CommandVersion, Detect([]string{"--version", "-i"}))
	assert.Equal(t, CommandHelp, Detect([]string{"-h"}))
	assert.Equal(t, CommandHelp, Detect([]string{"--help", "whatever"}))
	assert.Equal(t, CommandConvert, Detect([]string{"-i", "docs", "-v"}))
	assert.Equal(t, CommandConvert, Detect(nil))
}
