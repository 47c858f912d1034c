package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	initLogging(false)

	app := newApp()
	require.NotNil(t, app)
	assert.Equal(t, name, app.Name)

	names := make([]string, 0, len(app.Commands))
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "enrich")
	assert.Contains(t, names, "check")
	assert.Contains(t, names, "history")
}

func TestEncodeFormats(t *testing.T) {
	v := map[string]int{"a": 1}

	outputFormat = formatJSON
	assert.NoError(t, encode(v))

	outputFormat = formatYAML
	assert.NoError(t, encode(v))
	outputFormat = formatJSON
}
