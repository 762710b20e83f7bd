// Package format renders parse results as text, JSON or YAML.
package format

import (
	"encoding"
	"errors"
	"fmt"
	"io"

	"github.com/dhamidi/mipaco/combinator"
)

var ErrUnknownFormat = errors.New("unknown format")

// Entry is a parse result as it is rendered.
type Entry struct {
	Value any    `json:"value" yaml:"value"`
	Rest  string `json:"rest" yaml:"rest"`
}

// Entries converts results into entries, preserving order.
func Entries[T any](results []combinator.Result[T]) []Entry {
	entries := make([]Entry, len(results))
	for i, r := range results {
		entries[i] = Entry{Value: r.Value, Rest: r.Rest}
	}
	return entries
}

type Encoder interface {
	encoding.TextMarshaler
	Encode(entries []Entry) error
}

// Names lists the supported format names.
var Names = []string{"text", "json", "yaml"}

// New returns the encoder registered under name, writing to w.
func New(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "text":
		return NewTextEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
}

// document is the shape of structured output.
type document struct {
	Count   int     `json:"count" yaml:"count"`
	Results []Entry `json:"results" yaml:"results"`
}

func newDocument(entries []Entry) document {
	if entries == nil {
		entries = []Entry{}
	}
	return document{Count: len(entries), Results: entries}
}

func write(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
