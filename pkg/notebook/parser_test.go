package notebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNotebook = "# Databricks notebook source\n\n# COMMAND ----------\n\nprint(1)\n\n# COMMAND ----------\n\n# MAGIC %sql\n# MAGIC SELECT 1"

func TestParse(t *testing.T) {
	cells := Parse(testNotebook)
	require.Len(t, cells, 2)

	assert.Equal(t, Cell{Index: 0, Content: "print(1)", Language: LanguageUnset}, cells[0])
	assert.Equal(t, Cell{Index: 1, Content: "# MAGIC %sql\n# MAGIC SELECT 1", Language: SQL}, cells[1])
}

func TestParse_noDelimiter(t *testing.T) {
	cells := Parse("print(\"hello\")\nprint(\"world\")")
	require.Len(t, cells, 1)
	assert.Equal(t, 0, cells[0].Index)
	assert.Equal(t, "print(\"hello\")\nprint(\"world\")", cells[0].Content)
	assert.Equal(t, LanguageUnset, cells[0].Language)
}

func TestParse_headerOnly(t *testing.T) {
	cells := Parse("# Databricks notebook source\n\n\nprint(1)")
	require.Len(t, cells, 1)
	assert.Equal(t, "print(1)", cells[0].Content)
}

func TestParse_emptyFirstCellKept(t *testing.T) {
	cells := Parse("\n\n# COMMAND ----------\n\nprint(1)")
	require.Len(t, cells, 2)
	assert.Equal(t, "", cells[0].Content)
	assert.Equal(t, "print(1)", cells[1].Content)
}

func TestParse_emptyFirstCellSurvivesHeaderRoundTrip(t *testing.T) {
	cells := []Cell{
		{Index: 0, Content: ""},
		{Index: 1, Content: "print(1)"},
	}

	again := Parse(Serialize(cells, true))
	require.Len(t, again, 2)
	assert.Equal(t, "", again[0].Content)
	assert.Equal(t, "print(1)", again[1].Content)
}

func TestParse_dropsEmptyInteriorCells(t *testing.T) {
	source := "a = 1\n\n# COMMAND ----------\n\n\n\n# COMMAND ----------\n\nb = 2"
	cells := Parse(source)
	require.Len(t, cells, 2)
	assert.Equal(t, "a = 1", cells[0].Content)
	assert.Equal(t, "b = 2", cells[1].Content)
	assert.Equal(t, []int{0, 1}, indices(cells))
}

func TestParse_trimsSurroundingWhitespace(t *testing.T) {
	cells := Parse("  \nprint(1)\n  \n# COMMAND ----------\n\n\tprint(2)  \n")
	require.Len(t, cells, 2)
	assert.Equal(t, "print(1)", cells[0].Content)
	assert.Equal(t, "print(2)", cells[1].Content)
}

func TestParse_roundTrip(t *testing.T) {
	sources := []string{
		testNotebook,
		"print(1)",
		"",
		"# MAGIC %md\n# MAGIC # Title\n# MAGIC\n# MAGIC Some text",
		"a = 1\n\n# COMMAND ----------\n\n# MAGIC %sh\n# MAGIC ls -la\n\n# COMMAND ----------\n\nb = 2",
	}

	for _, source := range sources {
		cells := Parse(source)
		again := Parse(Serialize(cells, true))
		require.Len(t, again, len(cells), "source: %q", source)
		for i := range cells {
			assert.Equal(t, cells[i].Content, again[i].Content, "source: %q", source)
			assert.Equal(t, cells[i].Language, again[i].Language, "source: %q", source)
		}
	}
}

func indices(cells []Cell) []int {
	result := make([]int, len(cells))
	for i, c := range cells {
		result[i] = c.Index
	}
	return result
}
