// Package sudoku solves and validates 9x9 puzzles recognized from
// screenshots.
package sudoku

import "github.com/pzhao/sudokucap/internal/grid"

// Solve fills the empty cells of g in place using backtracking.
// Returns false when the puzzle has no solution, leaving g with its
// original givens restored.
func Solve(g *grid.Grid) bool {
	return solve(g, 0, 0)
}

func solve(g *grid.Grid, r, c int) bool {
	r, c, done := nextEmptyCell(g, r, c)
	if done {
		return true
	}

	for digit := 1; digit <= 9; digit++ {
		if !canPlace(g, r, c, digit) {
			continue
		}
		g[r][c] = digit
		if solve(g, r, c) {
			return true
		}
		g[r][c] = 0
	}

	return false
}

func nextEmptyCell(g *grid.Grid, row, col int) (r, c int, done bool) {
	for ; row < grid.Size; row++ {
		for ; col < grid.Size; col++ {
			if g[row][col] == 0 {
				return row, col, false
			}
		}
		col = 0
	}
	return 0, 0, true
}

func canPlace(g *grid.Grid, row, col, digit int) bool {
	for i := 0; i < grid.Size; i++ {
		if g[row][i] == digit ||
			g[i][col] == digit ||
			g[row/3*3+i/3][col/3*3+i%3] == digit {
			return false
		}
	}
	return true
}

// Validate reports whether g is a completed, rule-respecting grid:
// every cell filled and no digit repeated in a row, column, or box.
func Validate(g *grid.Grid) bool {
	var rows, cols, boxes [grid.Size][grid.Size]bool
	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			cell := g[row][col]
			if cell == 0 {
				return false
			}

			digit := cell - 1
			box := row/3*3 + col/3
			if rows[row][digit] || cols[col][digit] || boxes[box][digit] {
				return false
			}
			rows[row][digit], cols[col][digit], boxes[box][digit] = true, true, true
		}
	}
	return true
}

// Consistent reports whether the givens of a possibly incomplete grid
// violate any rule. Used to reject OCR misreads before solving.
func Consistent(g *grid.Grid) bool {
	var rows, cols, boxes [grid.Size][grid.Size]bool
	for row := 0; row < grid.Size; row++ {
		for col := 0; col < grid.Size; col++ {
			cell := g[row][col]
			if cell == 0 {
				continue
			}

			digit := cell - 1
			box := row/3*3 + col/3
			if rows[row][digit] || cols[col][digit] || boxes[box][digit] {
				return false
			}
			rows[row][digit], cols[col][digit], boxes[box][digit] = true, true, true
		}
	}
	return true
}
