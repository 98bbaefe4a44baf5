package notebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Cell is one logical unit of notebook content. Index is zero-based and
// contiguous across the whole sequence; Content is trimmed and never
// contains the cell delimiter as a standalone line.
type Cell struct {
	Index    int      `json:"index"`
	Content  string   `json:"content"`
	Language Language `json:"language"`
}

var jsonNull = []byte("null")

// MarshalJSON renders LanguageUnset as null so that the JSON
// representation matches the remote store format.
func (l Language) MarshalJSON() ([]byte, error) {
	if l == LanguageUnset {
		return jsonNull, nil
	}
	return json.Marshal(string(l))
}

func (l *Language) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*l = LanguageUnset
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l = Language(s)
	return nil
}

const previewLines = 10

// FormatCell renders a cell for human display. With showContent the first
// ten lines of content are included, followed by a truncation note.
func FormatCell(cell Cell, showContent bool) string {
	lang := ""
	if cell.Language != LanguageUnset {
		lang = fmt.Sprintf(" [%s]", cell.Language)
	}
	header := fmt.Sprintf("--- Cell %d%s ---", cell.Index, lang)

	lines := strings.Split(cell.Content, "\n")
	if !showContent {
		return fmt.Sprintf("%s (%d lines)", header, len(lines))
	}

	if len(lines) > previewLines {
		rest := len(lines) - previewLines
		lines = append(lines[:previewLines:previewLines], fmt.Sprintf("... (%d more lines)", rest))
	}
	return header + "\n" + strings.Join(lines, "\n")
}
