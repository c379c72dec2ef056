package json

import (
	"bufio"
	"encoding/json"
	"io"
)

func writeWithIndent(w io.Writer, indent string, value interface{}) error {
	writer := bufio.NewWriter(w)
	encoder := json.NewEncoder(writer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", indent)
	if err := encoder.Encode(value); err != nil {
		return err
	}
	return writer.Flush()
}
