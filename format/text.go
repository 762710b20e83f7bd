package format

import (
	"fmt"
	"io"
	"strings"
)

// TextEncoder writes one result per line, followed by the unconsumed input when
// there is any.
type TextEncoder struct {
	w       io.Writer
	entries []Entry
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(entries []Entry) error {
	e.entries = entries
	return write(e.w, e)
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, entry := range e.entries {
		fmt.Fprint(&sb, entry.Value)
		if entry.Rest != "" {
			fmt.Fprintf(&sb, " (rest is %q)", entry.Rest)
		}
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}
