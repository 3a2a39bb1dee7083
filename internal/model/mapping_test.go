package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingWithSuffix(t *testing.T) {
	m := Mapping{
		"k1": Target("X"),
		"k2": Targets("Y", "Y"),
	}

	got := m.WithSuffix("_3")

	require.Len(t, got, 2)
	assert.False(t, got["k1"].IsMulti())
	assert.Equal(t, []string{"X_3"}, got["k1"].Names())
	assert.True(t, got["k2"].IsMulti())
	assert.Equal(t, []string{"Y_3", "Y_3"}, got["k2"].Names())

	// original untouched
	assert.Equal(t, []string{"X"}, m["k1"].Names())
	assert.Equal(t, []string{"Y", "Y"}, m["k2"].Names())
}

func TestMappingWithSuffixNil(t *testing.T) {
	var m Mapping
	assert.Nil(t, m.WithSuffix("_1"))
}

func TestMappingKeysSorted(t *testing.T) {
	m := Mapping{"kb": Target("X"), "ka": Target("Y"), "kc": Target("Z")}
	assert.Equal(t, []string{"ka", "kb", "kc"}, m.Keys())
}

func TestTargetNamesCopies(t *testing.T) {
	target := Targets("A", "B")
	names := target.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"A", "B"}, target.Names())
}
