package json

import (
	"io"
)

// WriteWithIndent writes value to w as JSON, with each level indented by
// indent. A trailing newline is always written.
func WriteWithIndent(w io.Writer, indent string, value interface{}) error {
	return writeWithIndent(w, indent, value)
}
