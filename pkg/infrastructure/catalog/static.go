package catalog

import "storefront/pkg/domain/model"

// StaticCatalog serves the built-in product list. It is the default
// catalog when no database is configured.
type StaticCatalog struct {
	products []model.Product
}

func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{products: seedProducts()}
}

func NewStaticCatalogWith(products []model.Product) *StaticCatalog {
	return &StaticCatalog{products: products}
}

func (c *StaticCatalog) List() ([]model.Product, error) {
	products := make([]model.Product, len(c.products))
	copy(products, c.products)
	return products, nil
}

func (c *StaticCatalog) Find(id string) (*model.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, model.ErrProductNotFound
}

func seedProducts() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "Notebook Pro X",
			Description: "Professional notebook with 16GB RAM and 512GB SSD",
			PriceCents:  1500000,
			Stock:       10,
			ImageURL:    "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:          "2",
			Name:        "Wireless Headphones",
			Description: "Premium headphones with noise cancellation",
			PriceCents:  150000,
			Stock:       15,
			ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:          "50",
			Name:        "Gaming Monitor 27\"",
			Description: "High refresh rate 165Hz gaming monitor",
			PriceCents:  280000,
			Stock:       12,
			ImageURL:    "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:          "51",
			Name:        "Mechanical RGB Keyboard",
			Description: "Gaming keyboard with Cherry MX switches",
			PriceCents:  45000,
			Stock:       20,
			ImageURL:    "https://images.unsplash.com/photo-1541140532154-b024d705b90a?auto=format&fit=crop&q=80&w=800",
		},
		{
			ID:          "52",
			Name:        "Pro Gaming Mouse",
			Description: "High precision 16000 DPI gaming mouse",
			PriceCents:  35000,
			Stock:       25,
			ImageURL:    "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?auto=format&fit=crop&q=80&w=800",
		},
	}
}
