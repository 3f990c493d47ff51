package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/pkg/domain/model"
)

func TestStaticCatalog(t *testing.T) {
	c := NewStaticCatalog()

	products, err := c.List()
	require.NoError(t, err)
	require.NotEmpty(t, products)

	found, err := c.Find(products[0].ID)
	require.NoError(t, err)
	assert.Equal(t, products[0].Name, found.Name)

	_, err = c.Find("does-not-exist")
	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestStaticCatalogListIsACopy(t *testing.T) {
	c := NewStaticCatalogWith([]model.Product{
		{ID: "1", Name: "Notebook", PriceCents: 1000, Stock: 3},
	})

	products, err := c.List()
	require.NoError(t, err)
	products[0].Name = "mutated"

	again, err := c.List()
	require.NoError(t, err)
	assert.Equal(t, "Notebook", again[0].Name)
}
