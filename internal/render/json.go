package render

import (
	"encoding/json"
	"io"
)

// JSON writes v followed by a newline. HTML in view-models is written as is,
// not as \u003c escapes.
func JSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
