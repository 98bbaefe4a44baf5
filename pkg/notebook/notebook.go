// Package notebook parses and serializes Databricks notebooks in SOURCE
// format. A notebook is an ordered sequence of cells separated by a literal
// delimiter line; non-default-language cells carry their content behind
// per-line MAGIC markers.
package notebook

import "strings"

// Literal format markers. They must match the remote workspace format
// byte for byte.
const (
	// Header is the first line of an exported SOURCE notebook.
	Header = "# Databricks notebook source"
	// CellDelimiter separates two cells.
	CellDelimiter = "# COMMAND ----------"
	// MagicPrefix starts every non-empty line of a wrapped cell.
	// The trailing space is significant.
	MagicPrefix = "# MAGIC "
	// MagicMarker is emitted for empty lines of a wrapped cell.
	MagicMarker = "# MAGIC"
)

// Language identifies the sub-language of a single cell. The zero value
// means the cell inherits the notebook's default language.
type Language string

const (
	LanguageUnset Language = ""
	Python        Language = "python"
	SQL           Language = "sql"
	Scala         Language = "scala"
	R             Language = "r"
	Markdown      Language = "md"
	Shell         Language = "sh"
	FS            Language = "fs"
	Run           Language = "run"
	Pip           Language = "pip"
)

var detectable = map[Language]bool{
	Python:   true,
	SQL:      true,
	Scala:    true,
	R:        true,
	Markdown: true,
	Shell:    true,
	FS:       true,
	Run:      true,
	Pip:      true,
}

// wrapEligible is intentionally narrower than detectable: python is
// recognized by DetectLanguage but is never rendered with MAGIC markers,
// because it is expressible as the notebook's default language.
var wrapEligible = map[Language]bool{
	Markdown: true,
	SQL:      true,
	Scala:    true,
	R:        true,
	Shell:    true,
	FS:       true,
	Run:      true,
	Pip:      true,
}

// Detectable reports whether l can be the subject of a MAGIC directive.
func (l Language) Detectable() bool { return detectable[l] }

// WrapEligible reports whether Wrap transforms content for l.
func (l Language) WrapEligible() bool { return wrapEligible[l] }

// DetectLanguage inspects only the first line of content for a MAGIC
// directive, e.g. "# MAGIC %sql". It returns LanguageUnset when the first
// line is not a directive or names an unrecognized token. Directives on
// later lines are ignored.
func DetectLanguage(content string) Language {
	first, _, _ := strings.Cut(strings.TrimSpace(content), "\n")
	first = strings.TrimSpace(first)

	if !strings.HasPrefix(first, MagicPrefix) {
		return LanguageUnset
	}
	magic := strings.TrimSpace(first[len(MagicPrefix):])
	if !strings.HasPrefix(magic, "%") {
		return LanguageUnset
	}
	fields := strings.Fields(magic[1:])
	if len(fields) == 0 {
		return LanguageUnset
	}
	if lang := Language(fields[0]); lang.Detectable() {
		return lang
	}
	return LanguageUnset
}
