// Package replicate builds a grid of suffixed copies of a seed model.
package replicate

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Grid describes the requested arrangement of replicas. Rows and Cols are
// 1-based counts; a 1xN or Nx1 grid is a linear set.
type Grid struct {
	Rows int
	Cols int
}

// Cells returns the number of replicas.
func (g Grid) Cells() int { return g.Rows * g.Cols }

// Linear reports whether the grid degenerates to a simple set of copies.
func (g Grid) Linear() bool { return g.Rows == 1 || g.Cols == 1 }

// Validate rejects non-positive dimensions.
func (g Grid) Validate() error {
	if g.Rows < 1 || g.Cols < 1 {
		return fmt.Errorf("grid %dx%d: dimensions must be positive", g.Rows, g.Cols)
	}
	return nil
}

// Suffix returns the name suffix for the replica at row r, column c (both
// 0-based): "_i" with a 1-based sequential index for linear arrangements,
// "_r,c" with 1-based coordinates for a true grid.
func (g Grid) Suffix(r, c int) string {
	if g.Linear() {
		return fmt.Sprintf("_%d", r*g.Cols+c+1)
	}
	return fmt.Sprintf("_%d,%d", r+1, c+1)
}

// FileSuffix returns the suffix appended to the seed filename's base:
// "_N" for linear arrangements, "_RxC" for a grid.
func (g Grid) FileSuffix() string {
	if g.Linear() {
		return fmt.Sprintf("_%d", g.Cells())
	}
	return fmt.Sprintf("_%dx%d", g.Rows, g.Cols)
}

// Description returns the human-readable form used in the new model's name
// and notes, e.g. "a set of 4 (2x2) replicas".
func (g Grid) Description() string {
	if g.Linear() {
		return fmt.Sprintf("a set of %d replicas", g.Cells())
	}
	return fmt.Sprintf("a set of %d (%dx%d) replicas", g.Cells(), g.Rows, g.Cols)
}

// OutputFilename derives the output path from the seed model path:
// model.cps replicated 3x1 becomes model_3.cps, 2x2 becomes model_2x2.cps.
func OutputFilename(seedPath string, g Grid) string {
	ext := filepath.Ext(seedPath)
	base := strings.TrimSuffix(seedPath, ext)
	return base + g.FileSuffix() + ext
}
