package game

import (
	"strings"
	"time"
)

// Display geometry.
const (
	Cols = 16
	Rows = 2
)

// Display is the character display sink.
type Display interface {
	Clear()
	WriteAt(col, row int, text string)
}

// Buzzer is the tone emitter. Tone must not block.
type Buzzer interface {
	Tone(freqHz int, d time.Duration)
}

// Frame is an in-memory 16x2 character grid. It implements Display.
type Frame struct {
	cells [Rows][Cols]rune
}

// Clear blanks every cell.
func (f *Frame) Clear() {
	for r := range f.cells {
		for c := range f.cells[r] {
			f.cells[r][c] = ' '
		}
	}
}

// WriteAt writes text starting at the given cell. Characters past the last
// column are dropped; writes outside the grid are ignored.
func (f *Frame) WriteAt(col, row int, text string) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return
	}
	for _, ch := range text {
		if col >= Cols {
			return
		}
		f.cells[row][col] = ch
		col++
	}
}

// Line returns one row as a 16 character string.
func (f *Frame) Line(row int) string {
	var b strings.Builder
	for _, ch := range f.cells[row] {
		if ch == 0 {
			ch = ' '
		}
		b.WriteRune(ch)
	}
	return b.String()
}

// Cell returns the character at the given position.
func (f *Frame) Cell(col, row int) rune {
	ch := f.cells[row][col]
	if ch == 0 {
		return ' '
	}
	return ch
}

func (f *Frame) String() string {
	return f.Line(0) + "\n" + f.Line(1)
}
