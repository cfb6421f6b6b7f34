package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldCase(t *testing.T) {
	assert.Equal(t, "samsung", FoldCase("SAMSUNG"))
	assert.Equal(t, FoldCase("Σίσυφος"), FoldCase("ΣΊΣΥΦΟΣ"))
	assert.Equal(t, "", FoldCase(""))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\n"))
	assert.False(t, IsBlank(" x "))
}
