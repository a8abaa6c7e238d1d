// Package grid rectifies a photographed puzzle grid into an
// axis-aligned square and slices it into cells for recognition.
package grid

import "strings"

// Size is the puzzle dimension: 9 rows by 9 columns.
const Size = 9

// Grid is a 9x9 puzzle state. Cells hold digits 1-9; 0 marks an empty
// or unrecognized cell. A Grid is created fresh per recognition run.
type Grid [Size][Size]int

// Count returns the number of filled (non-zero) cells.
func (g *Grid) Count() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

// String renders the grid with box separators, empty cells as dots.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 && r%3 == 0 {
			b.WriteString("------+-------+------\n")
		}
		for c := 0; c < Size; c++ {
			if c > 0 && c%3 == 0 {
				b.WriteString("| ")
			}
			if g[r][c] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte(byte('0' + g[r][c]))
			}
			if c < Size-1 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
