package notebook

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// FormatTag identifies the JSON representation of a SOURCE notebook.
const FormatTag = "databricks-source"

// Document is the JSON shape of a parsed notebook.
type Document struct {
	Format string `json:"format"`
	Cells  []Cell `json:"cells"`
}

// ToJSON encodes cells as an indented JSON document.
func ToJSON(cells []Cell) ([]byte, error) {
	doc := Document{
		Format: FormatTag,
		Cells:  cells,
	}
	data, err := json.MarshalIndent(&doc, "", "  ")
	return data, errors.Wrap(err, "failed to marshal cells")
}

// FromJSON decodes a Document back into a cell sequence. A cell entry
// without an index gets its position in the array; a missing language
// means LanguageUnset. The stored language is trusted as-is and not
// re-detected from content.
func FromJSON(data []byte) ([]Cell, error) {
	var doc struct {
		Cells []struct {
			Index    *int     `json:"index"`
			Content  string   `json:"content"`
			Language Language `json:"language"`
		} `json:"cells"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode notebook JSON")
	}

	cells := make([]Cell, 0, len(doc.Cells))
	for i, c := range doc.Cells {
		index := i
		if c.Index != nil {
			index = *c.Index
		}
		cells = append(cells, Cell{
			Index:    index,
			Content:  c.Content,
			Language: c.Language,
		})
	}
	return cells, nil
}
