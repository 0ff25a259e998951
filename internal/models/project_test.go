package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyValid(t *testing.T) {
	for _, d := range []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced} {
		assert.True(t, d.Valid(), d)
	}
	assert.False(t, Difficulty("Expert").Valid())
	assert.False(t, Difficulty("beginner").Valid())
	assert.False(t, Difficulty("").Valid())
}
