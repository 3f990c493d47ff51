package model

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Product is an immutable catalog entry. Stock is advisory display data;
// nothing in the checkout flow reserves or decrements it.
type Product struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	PriceCents  int64  `db:"price_cents" json:"price_cents"`
	Stock       int    `db:"stock" json:"stock"`
	ImageURL    string `db:"image_url" json:"image_url"`
}

type CatalogRepository interface {
	List() ([]Product, error)
	Find(id string) (*Product, error)
}
