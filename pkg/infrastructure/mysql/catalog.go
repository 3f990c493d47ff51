package mysql

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"storefront/pkg/domain/model"
)

func Connect(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "connect to mysql")
	}
	return db, nil
}

// CatalogRepository reads the immutable product catalog from MySQL.
// Nothing in the checkout flow writes to it.
type CatalogRepository struct {
	db *sqlx.DB
}

func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) List() ([]model.Product, error) {
	products := make([]model.Product, 0)
	err := r.db.Select(&products,
		`SELECT id, name, description, price_cents, stock, image_url FROM products ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return products, nil
}

func (r *CatalogRepository) Find(id string) (*model.Product, error) {
	var product model.Product
	err := r.db.Get(&product,
		`SELECT id, name, description, price_cents, stock, image_url FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find product")
	}
	return &product, nil
}
