// Package output provides output formatting for the cipherkit CLI.
package output

import (
	"fmt"
	"io"
)

// Texter is implemented by values with a plain-text rendering.
type Texter interface {
	Text() string
}

// TextFormatter writes the plain rendering of data followed by a newline.
type TextFormatter struct{}

// Format writes data.Text() when available, otherwise its default
// formatting. Tables are rendered without headers.
func (f *TextFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case nil:
		return nil
	case Texter:
		_, err := fmt.Fprintln(w, v.Text())
		return err
	case *Table:
		return v.RenderWithOptions(w, true)
	case []byte:
		_, err := fmt.Fprintln(w, string(v))
		return err
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}
