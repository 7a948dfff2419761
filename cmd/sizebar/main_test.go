package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fudanchii/sizefmt"
)

func TestParseBase(t *testing.T) {
	base, err := parseBase(2)
	require.NoError(t, err)
	assert.Equal(t, sizefmt.Base2, base)

	base, err = parseBase(10)
	require.NoError(t, err)
	assert.Equal(t, sizefmt.Base10, base)

	_, err = parseBase(16)
	assert.Error(t, err)
}

func TestParseStyle(t *testing.T) {
	tests := map[string]sizefmt.Style{
		"default":      sizefmt.StyleDefault,
		"abbrev":       sizefmt.StyleAbbreviated,
		"abbrev-lower": sizefmt.StyleAbbreviatedLowercase,
		"full":         sizefmt.StyleFull,
		"full-lower":   sizefmt.StyleFullLowercase,
	}

	for in, expected := range tests {
		style, err := parseStyle(in)
		require.NoError(t, err, "style %q", in)
		assert.Equal(t, expected, style, "style %q", in)
	}

	_, err := parseStyle("shouting")
	assert.Error(t, err)
}
