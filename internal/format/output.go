package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formats lists the supported output formats.
var Formats = []string{"json", "edn"}

// Validate reports an error for formats Write does not know.
func Validate(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json", "edn":
		return nil
	}
	return fmt.Errorf("unknown format: %s (want %s)", format, strings.Join(Formats, "|"))
}

// Write writes v in the requested format ("" means json).
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "edn":
		return WriteEDN(w, v, pretty)
	default:
		return Validate(format)
	}
}

// WriteJSON writes one JSON document followed by a newline. HTML escaping is off so
// titles come out as typed.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
