package format

import (
	"encoding/json"
	"io"
)

type JSONEncoder struct {
	w       io.Writer
	entries []Entry
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(entries []Entry) error {
	e.entries = entries
	return write(e.w, e)
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	data, err := json.MarshalIndent(newDocument(e.entries), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
