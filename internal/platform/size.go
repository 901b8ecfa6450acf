package platform

import (
	"errors"
	"fmt"
)

// ErrTerminalTooSmall is returned when the terminal cannot hold the playfield.
var ErrTerminalTooSmall = errors.New("terminal too small")

// RequiredSize returns the terminal size needed for a cols×rows playfield:
// one cell of border on every side plus a footer line.
func RequiredSize(cols, rows int) (w, h int) {
	return cols + 2, rows + 3
}

// CheckSize reports ErrTerminalTooSmall if a w×h terminal cannot show a
// cols×rows playfield.
func CheckSize(w, h, cols, rows int) error {
	needW, needH := RequiredSize(cols, rows)
	if w < needW || h < needH {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTerminalTooSmall, needW, needH, w, h)
	}
	return nil
}
