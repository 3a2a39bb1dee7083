package replicate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridSuffix(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		r, c int
		want string
	}{
		{"row vector first", Grid{Rows: 1, Cols: 4}, 0, 0, "_1"},
		{"row vector last", Grid{Rows: 1, Cols: 4}, 0, 3, "_4"},
		{"column vector", Grid{Rows: 3, Cols: 1}, 2, 0, "_3"},
		{"grid origin", Grid{Rows: 2, Cols: 2}, 0, 0, "_1,1"},
		{"grid corner", Grid{Rows: 2, Cols: 3}, 1, 2, "_2,3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.grid.Suffix(tt.r, tt.c))
		})
	}
}

func TestGridSuffixUniqueness(t *testing.T) {
	g := Grid{Rows: 3, Cols: 4}
	seen := make(map[string]bool)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			s := g.Suffix(r, c)
			assert.False(t, seen[s], "duplicate suffix %s", s)
			seen[s] = true
		}
	}
	assert.Len(t, seen, g.Cells())
}

func TestOutputFilename(t *testing.T) {
	tests := []struct {
		path string
		grid Grid
		want string
	}{
		{"model.cps", Grid{Rows: 3, Cols: 1}, "model_3.cps"},
		{"model.cps", Grid{Rows: 2, Cols: 2}, "model_2x2.cps"},
		{"model.cps", Grid{Rows: 1, Cols: 5}, "model_5.cps"},
		{"dir/model.v2.cps", Grid{Rows: 2, Cols: 3}, "dir/model.v2_2x3.cps"},
		{"noext", Grid{Rows: 2, Cols: 1}, "noext_2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OutputFilename(tt.path, tt.grid))
	}
}

func TestGridDescription(t *testing.T) {
	assert.Equal(t, "a set of 4 replicas", Grid{Rows: 4, Cols: 1}.Description())
	assert.Equal(t, "a set of 4 replicas", Grid{Rows: 1, Cols: 4}.Description())
	assert.Equal(t, "a set of 4 (2x2) replicas", Grid{Rows: 2, Cols: 2}.Description())
}

func TestGridValidate(t *testing.T) {
	assert.Error(t, Grid{Rows: 0, Cols: 2}.Validate())
	assert.Error(t, Grid{Rows: 2, Cols: -1}.Validate())
	assert.NoError(t, Grid{Rows: 1, Cols: 1}.Validate())
}
