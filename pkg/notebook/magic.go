package notebook

import "strings"

// Wrap renders content behind MAGIC markers for a wrap-eligible language:
// a "# MAGIC %<lang>" directive line, then every content line behind the
// prefix, empty lines as the bare marker. Content for any other language,
// python included, is returned unchanged.
func Wrap(content string, lang Language) string {
	if !lang.WrapEligible() {
		return content
	}

	lines := strings.Split(content, "\n")
	wrapped := make([]string, 0, len(lines)+1)
	wrapped = append(wrapped, MagicPrefix+"%"+string(lang))
	for _, line := range lines {
		if line != "" {
			wrapped = append(wrapped, MagicPrefix+line)
		} else {
			wrapped = append(wrapped, MagicMarker)
		}
	}
	return strings.Join(wrapped, "\n")
}

// Unwrap strips MAGIC markers from cell content. Lines without a marker
// pass through unchanged. A leftover "%<lang>" directive left as the first
// line after stripping is dropped. Unwrap inverts Wrap only for
// wrap-eligible languages.
func Unwrap(content string) string {
	lines := strings.Split(content, "\n")
	unwrapped := make([]string, 0, len(lines))
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, MagicPrefix):
			unwrapped = append(unwrapped, line[len(MagicPrefix):])
		case strings.TrimSpace(line) == MagicMarker:
			unwrapped = append(unwrapped, "")
		default:
			unwrapped = append(unwrapped, line)
		}
	}

	if len(unwrapped) > 0 && strings.HasPrefix(unwrapped[0], "%") {
		unwrapped = unwrapped[1:]
	}
	return strings.TrimSpace(strings.Join(unwrapped, "\n"))
}
