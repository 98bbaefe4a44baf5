package notebook

import "strings"

// Parse splits SOURCE text into an ordered cell sequence. It accepts any
// input: a text with no delimiters parses to a single cell. The header
// line, if present, is stripped together with the blank lines that follow
// it. Empty segments after trimming are dropped, except the very first one
// which is kept so that notebooks legitimately starting with an empty cell
// survive a round trip.
func Parse(source string) []Cell {
	if strings.HasPrefix(source, Header) {
		source = strings.TrimLeft(source[len(Header):], "\n")
		// The canonical form puts a delimiter between the header and
		// the first cell. That delimiter belongs to the header, not to
		// an empty leading cell.
		if strings.HasPrefix(source, CellDelimiter) {
			source = strings.TrimLeft(source[len(CellDelimiter):], "\n")
		}
	}

	var cells []Cell
	for i, raw := range strings.Split(source, CellDelimiter) {
		content := strings.TrimSpace(raw)
		if content == "" && i > 0 {
			continue
		}
		cells = append(cells, Cell{
			Index:    len(cells),
			Content:  content,
			Language: DetectLanguage(content),
		})
	}
	return cells
}
