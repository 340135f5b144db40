package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosMod(t *testing.T) {
	assert.Equal(t, 7, PosMod(7, 12))
	assert.Equal(t, 7, PosMod(19, 12))
	assert.Equal(t, 7, PosMod(-5, 12))
	assert.Equal(t, 0, PosMod(-12, 12))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 0, FloorDiv(11, 12))
	assert.Equal(t, 1, FloorDiv(12, 12))
	assert.Equal(t, -1, FloorDiv(-1, 12))
	assert.Equal(t, -1, FloorDiv(-12, 12))
	assert.Equal(t, -2, FloorDiv(-13, 12))
}

func TestGetKeysSorted(t *testing.T) {
	m := map[string]int{"b": 2, "c": 3, "a": 1}
	assert.Equal(t, []string{"a", "b", "c"}, GetKeys(m))
}

func TestUnique(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]int{4, 7, 0}, Unique([]int{4, 7, 4, 0, 7}))
	assert.Nil(Unique([]int{}))
}
