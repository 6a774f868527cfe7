package layout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
)

// Decode parses a single layout document. Source is only used to label
// errors and is stored on the returned Layout.
func Decode(source string, data []byte) (Layout, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Layout{}, &InputFormatError{Source: source, Err: errors.New("document is empty")}
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Layout{}, &InputFormatError{Source: source, Err: err}
	}
	if err := DocumentSchema().VisitJSON(raw, openapi3.MultiErrors()); err != nil {
		return Layout{}, &InputFormatError{Source: source, Err: err}
	}

	var out Layout
	if err := json.Unmarshal(data, &out); err != nil {
		return Layout{}, &InputFormatError{Source: source, Err: err}
	}
	out.Source = source
	return out, nil
}

// DecodeFile reads and decodes the layout document at path.
func DecodeFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, &InputFormatError{Source: path, Err: err}
	}
	return Decode(path, data)
}

// DecodeFiles decodes every path in order, stopping at the first failure.
func DecodeFiles(paths ...string) ([]Layout, error) {
	if len(paths) == 0 {
		return nil, &InputFormatError{Err: errors.New("no input files")}
	}
	out := make([]Layout, 0, len(paths))
	for _, path := range paths {
		l, err := DecodeFile(path)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// Encode serialises the layout using the document envelope, indented by two
// spaces and terminated by a newline.
func Encode(l Layout) ([]byte, error) {
	if l.Elements == nil {
		l.Elements = []Element{}
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("layout: encode: %w", err)
	}
	return append(data, '\n'), nil
}
