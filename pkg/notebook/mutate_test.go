package notebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoCells() []Cell {
	return Parse(testNotebook)
}

func TestGet(t *testing.T) {
	cells := twoCells()

	cell, err := Get(cells, 1)
	require.NoError(t, err)
	assert.Equal(t, SQL, cell.Language)

	_, err = Get(cells, 5)
	require.Error(t, err)
	require.True(t, IsIndexError(err))
	assert.EqualError(t, err, "cell index 5 out of range (0-1)")

	_, err = Get(cells, -1)
	require.True(t, IsIndexError(err))
}

func TestUpdate(t *testing.T) {
	cells := twoCells()

	updated, err := Update(cells, 0, "print(42)", LanguageUnset)
	require.NoError(t, err)
	assert.Equal(t, "print(42)", updated[0].Content)
	assert.Equal(t, cells[1], updated[1])

	// Input sequence is untouched.
	assert.Equal(t, "print(1)", cells[0].Content)
}

func TestUpdate_withLanguageWraps(t *testing.T) {
	cells := twoCells()

	updated, err := Update(cells, 0, "SELECT 2", SQL)
	require.NoError(t, err)
	assert.Equal(t, "# MAGIC %sql\n# MAGIC SELECT 2", updated[0].Content)
	assert.Equal(t, SQL, updated[0].Language)
}

func TestUpdate_outOfRange(t *testing.T) {
	_, err := Update(twoCells(), 2, "x", LanguageUnset)
	require.True(t, IsIndexError(err))
}

func TestInsert(t *testing.T) {
	cells := twoCells()

	inserted, err := Insert(cells, 1, "x = 1", LanguageUnset)
	require.NoError(t, err)
	require.Len(t, inserted, 3)
	assert.Equal(t, "x = 1", inserted[1].Content)
	assert.Equal(t, []int{0, 1, 2}, indices(inserted))
	assert.Equal(t, cells[1].Content, inserted[2].Content)

	// Appending at index == len is legal.
	appended, err := Insert(cells, len(cells), "tail", LanguageUnset)
	require.NoError(t, err)
	assert.Equal(t, "tail", appended[2].Content)

	_, err = Insert(cells, len(cells)+1, "x", LanguageUnset)
	require.True(t, IsIndexError(err))
	assert.EqualError(t, err, "cell index 3 out of range (0-2)")
}

func TestInsert_withLanguageWraps(t *testing.T) {
	inserted, err := Insert(twoCells(), 0, "# Intro", Markdown)
	require.NoError(t, err)
	assert.Equal(t, "# MAGIC %md\n# MAGIC # Intro", inserted[0].Content)
	assert.Equal(t, Markdown, inserted[0].Language)
}

func TestDelete(t *testing.T) {
	cells := twoCells()

	deleted, err := Delete(cells, 0)
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, 0, deleted[0].Index)
	assert.Equal(t, cells[1].Content, deleted[0].Content)
	assert.Equal(t, cells[1].Language, deleted[0].Language)

	_, err = Delete(cells, 2)
	require.True(t, IsIndexError(err))
}

func TestInsertDelete_inverse(t *testing.T) {
	cells := twoCells()

	for i := 0; i <= len(cells); i++ {
		inserted, err := Insert(cells, i, "tmp", LanguageUnset)
		require.NoError(t, err)
		restored, err := Delete(inserted, i)
		require.NoError(t, err)
		assert.Equal(t, cells, restored, "index: %d", i)
	}
}

func TestMutations_keepIndicesContiguous(t *testing.T) {
	cells := twoCells()

	inserted, err := Insert(cells, 1, "x", SQL)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, indices(inserted))

	updated, err := Update(inserted, 2, "y", LanguageUnset)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, indices(updated))

	deleted, err := Delete(updated, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, indices(deleted))
}
