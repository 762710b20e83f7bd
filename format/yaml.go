package format

import (
	"io"

	"gopkg.in/yaml.v3"
)

type YAMLEncoder struct {
	w       io.Writer
	entries []Entry
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(entries []Entry) error {
	e.entries = entries
	return write(e.w, e)
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	return yaml.Marshal(newDocument(e.entries))
}
