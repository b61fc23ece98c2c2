package reducer

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
)

// cellText renders a cell value the way the clipboard and the sheet modal
// both need it: nil becomes empty, everything else uses its default string
// form.
func cellText(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// insertRune inserts ch at ti's cursor position and advances the cursor,
// since bubbles/textinput has no direct "insert at cursor" method when the
// input is driven by discrete Insert actions rather than bubbletea key
// messages.
func insertRune(ti *textinput.Model, ch rune) {
	val := []rune(ti.Value())
	pos := clampPos(ti.Position(), len(val))
	next := make([]rune, 0, len(val)+1)
	next = append(next, val[:pos]...)
	next = append(next, ch)
	next = append(next, val[pos:]...)
	ti.SetValue(string(next))
	ti.SetCursor(pos + 1)
}

// backspaceRune deletes the rune immediately left of the cursor, a no-op at
// position 0.
func backspaceRune(ti *textinput.Model) {
	val := []rune(ti.Value())
	pos := clampPos(ti.Position(), len(val))
	if pos == 0 {
		return
	}
	next := make([]rune, 0, len(val)-1)
	next = append(next, val[:pos-1]...)
	next = append(next, val[pos:]...)
	ti.SetValue(string(next))
	ti.SetCursor(pos - 1)
}

func moveCursor(ti *textinput.Model, delta int) {
	ti.SetCursor(ti.Position() + delta)
}

func clampPos(pos, n int) int {
	if pos < 0 {
		return 0
	}
	if pos > n {
		return n
	}
	return pos
}
