// Package clipboard implements the Clipboard collaborator (spec.md §6):
// encode bytes as base64 and emit an OSC-52 escape sequence to stdout so a
// supporting terminal copies them to the system clipboard, without tabiew
// itself touching any OS clipboard API.
package clipboard

import (
	"io"
	"os"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Write emits an OSC-52 set-clipboard escape sequence encoding data to w.
func Write(w io.Writer, data []byte) error {
	seq := osc52.New(string(data))
	_, err := seq.WriteTo(w)
	return err
}

// WriteStdout is the default Clipboard entry point, used by the reducer for
// yank-style actions.
func WriteStdout(data []byte) error {
	return Write(os.Stdout, data)
}
