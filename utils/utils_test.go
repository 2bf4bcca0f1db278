package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{"streetwear", "vintage"}, SplitTags("Streetwear, vintage, , STREETWEAR"))
	assert.Empty(t, SplitTags(""))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("alice@example.com"))
	assert.False(t, ValidEmail("alice"))
	assert.False(t, ValidEmail("alice@"))
	assert.False(t, ValidEmail("@example.com"))
}

func TestGenerateNameLength(t *testing.T) {
	assert.Len(t, GenerateName(10), 10)
	assert.NotEqual(t, GenerateName(10), GenerateName(10))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "look_1.jpg", SanitizeFilename("look 1.jpg"))
	assert.Equal(t, "passwd", SanitizeFilename("../../etc/passwd"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "a"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
}
