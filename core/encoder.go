package core

import (
	"bytes"
	"encoding/json"
)

// Serialize renders a record as two-space indented JSON without HTML escaping and without
// a trailing newline. Struct fields appear in declaration order; map keys are sorted.
func Serialize(record interface{}) ([]byte, error) {
	buffer := new(bytes.Buffer)
	encoder := json.NewEncoder(buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(record)
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), nil
}
