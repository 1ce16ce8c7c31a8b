package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteStore is a Provider backed by a local SQLite database. It is
// read-mostly: Seed upserts an inventory, ListAll reads it back in insertion
// order.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (creating if needed) the database at path and ensures
// the products table exists. Use ":memory:" for an ephemeral store.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &SQLiteStore{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS products (
		rowid_order  INTEGER PRIMARY KEY AUTOINCREMENT,
		id           TEXT NOT NULL UNIQUE,
		name         TEXT NOT NULL,
		price        INTEGER NOT NULL,
		category     TEXT NOT NULL,
		condition    TEXT NOT NULL,
		status       TEXT NOT NULL,
		stock        INTEGER NOT NULL DEFAULT 0,
		location     TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		seller_phone TEXT NOT NULL DEFAULT '',
		featured     INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create products table: %w", err)
	}
	return nil
}

// Seed upserts the given products by id.
func (s *SQLiteStore) Seed(ctx context.Context, products []Product) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	stmt := `
	INSERT INTO products (id, name, price, category, condition, status, stock, location, description, seller_phone, featured)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		name = excluded.name,
		price = excluded.price,
		category = excluded.category,
		condition = excluded.condition,
		status = excluded.status,
		stock = excluded.stock,
		location = excluded.location,
		description = excluded.description,
		seller_phone = excluded.seller_phone,
		featured = excluded.featured
	`
	for _, p := range products {
		featured := 0
		if p.Featured {
			featured = 1
		}
		if _, err := tx.ExecContext(ctx, stmt,
			p.ID, p.Name, p.Price, string(p.Category), string(p.Condition), string(p.Status),
			p.Stock, p.Location, p.Description, p.SellerPhone, featured); err != nil {
			return fmt.Errorf("failed to upsert product %s: %w", p.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

// ListAll returns all products in insertion order.
func (s *SQLiteStore) ListAll(ctx context.Context) ([]Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, price, category, condition, status, stock, location, description, seller_phone, featured
		FROM products ORDER BY rowid_order`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		var featured int
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Condition, &p.Status,
			&p.Stock, &p.Location, &p.Description, &p.SellerPhone, &featured); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p.Featured = featured != 0
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
