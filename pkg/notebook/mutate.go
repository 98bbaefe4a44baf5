package notebook

// Mutation operations never modify their input: each returns a fresh,
// fully reindexed sequence, so indices are always exactly 0..n-1.

// Get returns the cell at index.
func Get(cells []Cell, index int) (Cell, error) {
	if index < 0 || index >= len(cells) {
		return Cell{}, &IndexError{Index: index, Max: len(cells) - 1}
	}
	return cells[index], nil
}

// Update replaces the content of the cell at index. With a language given,
// the content is wrapped first and the cell tagged.
func Update(cells []Cell, index int, content string, lang Language) ([]Cell, error) {
	if index < 0 || index >= len(cells) {
		return nil, &IndexError{Index: index, Max: len(cells) - 1}
	}

	result := reindex(append([]Cell(nil), cells...))
	if lang != LanguageUnset {
		content = Wrap(content, lang)
		result[index].Language = lang
	}
	result[index].Content = content
	return result, nil
}

// Insert adds a new cell at index, shifting subsequent cells up. Inserting
// at index == len(cells) appends.
func Insert(cells []Cell, index int, content string, lang Language) ([]Cell, error) {
	if index < 0 || index > len(cells) {
		return nil, &IndexError{Index: index, Max: len(cells)}
	}

	if lang != LanguageUnset {
		content = Wrap(content, lang)
	}

	result := make([]Cell, 0, len(cells)+1)
	result = append(result, cells[:index]...)
	result = append(result, Cell{Content: content, Language: lang})
	result = append(result, cells[index:]...)
	return reindex(result), nil
}

// Delete removes the cell at index, shifting subsequent cells down.
func Delete(cells []Cell, index int) ([]Cell, error) {
	if index < 0 || index >= len(cells) {
		return nil, &IndexError{Index: index, Max: len(cells) - 1}
	}

	result := make([]Cell, 0, len(cells)-1)
	result = append(result, cells[:index]...)
	result = append(result, cells[index+1:]...)
	return reindex(result), nil
}

func reindex(cells []Cell) []Cell {
	for i := range cells {
		cells[i].Index = i
	}
	return cells
}
