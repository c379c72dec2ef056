package json

import (
	"bytes"
	"testing"
)

type jsonDataType struct {
	Key  string
	Path string `json:",omitempty"`
}

func TestWriteWithIndent(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := WriteWithIndent(buffer, "    ", jsonDataType{Key: "a<b>"})
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n    \"Key\": \"a<b>\"\n}\n"
	if got := buffer.String(); got != want {
		t.Errorf("got: %q, want: %q", got, want)
	}
}
