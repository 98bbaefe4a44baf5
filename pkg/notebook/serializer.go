package notebook

import "strings"

// Serialize joins cells back into SOURCE text. Every cell after the first
// emitted block is preceded by a blank line, the delimiter line, and
// another blank line; with includeHeader the header counts as the first
// block, so cell 0 gets the same gap. This spacing is what the remote
// store emits and expects; Parse(Serialize(cells, h)) reproduces cells
// content- and language-equal.
func Serialize(cells []Cell, includeHeader bool) string {
	var parts []string
	if includeHeader {
		parts = append(parts, Header)
	}
	for i, cell := range cells {
		if i > 0 || includeHeader {
			parts = append(parts, "", CellDelimiter, "")
		}
		parts = append(parts, cell.Content)
	}
	return strings.Join(parts, "\n")
}
