package main

import (
	"io"
	"os"

	"github.com/pamac-go/alpmutil/lib/errors"
	"github.com/pamac-go/alpmutil/lib/json"
	"gopkg.in/yaml.v3"
)

func checkOutputFormat(format string) error {
	switch format {
	case "json", "yaml":
		return nil
	}
	return errors.NewUnimplementedError("output format: " + format)
}

func writeValue(writer io.Writer, format string, value interface{}) error {
	switch format {
	case "json":
		return json.WriteWithIndent(writer, "    ", value)
	case "yaml":
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return err
		}
		return encoder.Close()
	}
	return checkOutputFormat(format)
}

func printValue(value interface{}) error {
	return writeValue(os.Stdout, *outputFormat, value)
}
