package products

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpsertFilterKeysOnNameAndBrand(t *testing.T) {
	filter := UpsertFilter("Wool Coat", "Acme")

	assert.Len(t, filter, 2)
	assert.Equal(t, "Wool Coat", filter["name"])
	assert.Equal(t, "Acme", filter["brand"])
	// type and color are attributes, never identity
	assert.NotContains(t, filter, "type")
	assert.NotContains(t, filter, "color")
}
