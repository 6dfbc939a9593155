package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputFormat(t *testing.T) {
	f, err := ParseOutputFormat("text")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	f, err = ParseOutputFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseOutputFormat("Compact")
	require.NoError(t, err)
	assert.Equal(t, FormatCompact, f)

	_, err = ParseOutputFormat("yaml")
	assert.Error(t, err)
}
