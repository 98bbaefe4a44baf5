package notebook

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	cells := Parse(testNotebook)
	data, err := ToJSON(cells)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "databricks-source", doc["format"])

	encoded := doc["cells"].([]any)
	require.Len(t, encoded, 2)

	first := encoded[0].(map[string]any)
	assert.Equal(t, float64(0), first["index"])
	assert.Equal(t, "print(1)", first["content"])
	assert.Nil(t, first["language"])

	second := encoded[1].(map[string]any)
	assert.Equal(t, "sql", second["language"])
}

func TestFromJSON_defaults(t *testing.T) {
	cells, err := FromJSON([]byte(`{"cells":[{"content":"x"}]}`))
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.Equal(t, Cell{Index: 0, Content: "x", Language: LanguageUnset}, cells[0])
}

func TestFromJSON_positionalIndexDefaults(t *testing.T) {
	cells, err := FromJSON([]byte(`{"cells":[{"content":"a"},{"content":"b","language":"md"},{"index":7,"content":"c"}]}`))
	require.NoError(t, err)
	require.Len(t, cells, 3)
	assert.Equal(t, 0, cells[0].Index)
	assert.Equal(t, 1, cells[1].Index)
	assert.Equal(t, Markdown, cells[1].Language)
	// A stored index is trusted, not recomputed.
	assert.Equal(t, 7, cells[2].Index)
}

func TestFromJSON_malformed(t *testing.T) {
	_, err := FromJSON([]byte(`{"cells": "nope"}`))
	require.Error(t, err)

	_, err = FromJSON([]byte(`not json at all`))
	require.Error(t, err)
}

func TestJSONRoundTrip(t *testing.T) {
	cells := []Cell{
		{Index: 0, Content: "print(1)"},
		{Index: 1, Content: "# MAGIC %sql\n# MAGIC SELECT 1", Language: SQL},
		{Index: 2, Content: ""},
	}

	data, err := ToJSON(cells)
	require.NoError(t, err)

	decoded, err := FromJSON(data)
	require.NoError(t, err)
	assert.Equal(t, cells, decoded)
}

func TestFromJSON_doesNotRedetectLanguage(t *testing.T) {
	// The stored language field wins even when the content carries a
	// directive for a different language.
	cells, err := FromJSON([]byte(`{"cells":[{"content":"# MAGIC %sql\n# MAGIC SELECT 1"}]}`))
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.Equal(t, LanguageUnset, cells[0].Language)
}
