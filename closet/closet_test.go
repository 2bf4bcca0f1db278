package closet

import (
	"testing"

	"vesture/models"

	"github.com/stretchr/testify/assert"
)

func TestMergeFromProductCopiesProductFields(t *testing.T) {
	item := models.ClosetItem{}
	product := models.Product{
		Name:  "Wool Coat",
		Type:  "coat",
		Color: "camel",
		Image: "/static/uploads/coat.jpg",
	}

	MergeFromProduct(&item, &product)

	assert.Equal(t, "Wool Coat", item.Name)
	assert.Equal(t, "coat", item.Type)
	assert.Equal(t, "camel", item.Color)
	assert.Equal(t, "/static/uploads/coat.jpg", item.Image)
}

func TestMergeFromProductProductWinsOverRequest(t *testing.T) {
	item := models.ClosetItem{
		Name:  "My Coat",
		Type:  "jacket",
		Color: "black",
	}
	product := models.Product{
		Name:  "Wool Coat",
		Type:  "coat",
		Color: "camel",
	}

	MergeFromProduct(&item, &product)

	// Precedence is product-first, request-second.
	assert.Equal(t, "Wool Coat", item.Name)
	assert.Equal(t, "coat", item.Type)
	assert.Equal(t, "camel", item.Color)
}

func TestMergeFromProductRequestFillsGaps(t *testing.T) {
	item := models.ClosetItem{
		Color: "black",
		Image: "/static/uploads/mine.jpg",
	}
	product := models.Product{
		Name: "Wool Coat",
		Type: "coat",
		// no color, no image
	}

	MergeFromProduct(&item, &product)

	assert.Equal(t, "Wool Coat", item.Name)
	assert.Equal(t, "coat", item.Type)
	assert.Equal(t, "black", item.Color)
	assert.Equal(t, "/static/uploads/mine.jpg", item.Image)
}
