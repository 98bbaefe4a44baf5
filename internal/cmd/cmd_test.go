package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brickops/dbnb/pkg/notebook"
)

const testNotebook = "# Databricks notebook source\n\n# COMMAND ----------\n\nprint(1)\n\n# COMMAND ----------\n\n# MAGIC %sql\n# MAGIC SELECT 1"

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := Root()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	return out.String(), err
}

func TestParseCmd(t *testing.T) {
	out, err := execute(t, testNotebook, "parse")
	require.NoError(t, err)
	assert.Contains(t, out, "--- Cell 0 ---")
	assert.Contains(t, out, "print(1)")
	assert.Contains(t, out, "--- Cell 1 [sql] ---")
}

func TestParseCmd_json(t *testing.T) {
	out, err := execute(t, testNotebook, "parse", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"content": "print(1)"`)
	assert.Contains(t, out, `"language": "sql"`)
	assert.Contains(t, out, `"language": null`)
}

func TestCountCmd(t *testing.T) {
	out, err := execute(t, testNotebook, "count")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestGetCellCmd_raw(t *testing.T) {
	out, err := execute(t, testNotebook, "get-cell", "0", "--raw")
	require.NoError(t, err)
	assert.Equal(t, "print(1)\n", out)
}

func TestGetCellCmd_outOfRange(t *testing.T) {
	_, err := execute(t, testNotebook, "get-cell", "5")
	require.Error(t, err)
	assert.True(t, notebook.IsIndexError(err))
}

func TestUpdateCellCmd(t *testing.T) {
	out, err := execute(t, testNotebook, "update-cell", "0", "--content", "print(42)")
	require.NoError(t, err)
	assert.Contains(t, out, "print(42)")
	assert.Contains(t, out, notebook.Header)

	// The updated source still parses to two cells.
	cells := notebook.Parse(out)
	require.Len(t, cells, 2)
	assert.Equal(t, "print(42)", cells[0].Content)
}

func TestUpdateCellCmd_missingContent(t *testing.T) {
	_, err := execute(t, testNotebook, "update-cell", "0")
	require.ErrorIs(t, err, notebook.ErrMissingContent)
}

func TestInsertCellCmd_withLanguage(t *testing.T) {
	out, err := execute(t, testNotebook, "insert-cell", "2", "--content", "SELECT 2", "--language", "sql")
	require.NoError(t, err)

	cells := notebook.Parse(out)
	require.Len(t, cells, 3)
	assert.Equal(t, "# MAGIC %sql\n# MAGIC SELECT 2", cells[2].Content)
	assert.Equal(t, notebook.SQL, cells[2].Language)
}

func TestDeleteCellCmd(t *testing.T) {
	out, err := execute(t, testNotebook, "delete-cell", "0")
	require.NoError(t, err)

	cells := notebook.Parse(out)
	require.Len(t, cells, 1)
	assert.Equal(t, 0, cells[0].Index)
	assert.Equal(t, notebook.SQL, cells[0].Language)
}

func TestToFromJSONCmds_roundTrip(t *testing.T) {
	jsonOut, err := execute(t, testNotebook, "to-json")
	require.NoError(t, err)
	assert.Contains(t, jsonOut, `"format": "databricks-source"`)

	sourceOut, err := execute(t, jsonOut, "from-json")
	require.NoError(t, err)

	original := notebook.Parse(testNotebook)
	restored := notebook.Parse(sourceOut)
	require.Len(t, restored, len(original))
	for i := range original {
		assert.Equal(t, original[i].Content, restored[i].Content)
		assert.Equal(t, original[i].Language, restored[i].Language)
	}
}

func TestFromJSONCmd_malformed(t *testing.T) {
	_, err := execute(t, `{"cells": 42}`, "from-json")
	require.Error(t, err)
}
