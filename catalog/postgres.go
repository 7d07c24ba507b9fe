package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"storefront/models"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func InitDB(url string, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	createTableQuery := `
	CREATE TABLE IF NOT EXISTS products (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		price BIGINT NOT NULL,
		image VARCHAR(255) NOT NULL DEFAULT '',
		category VARCHAR(100) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		in_stock BOOLEAN NOT NULL DEFAULT TRUE
	);
	`

	if _, err := db.Exec(createTableQuery); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	logger.Info("Database connection established")
	return db, nil
}

// Load reads the catalog. An empty table is seeded with the built-in
// products first, so a fresh database serves the same storefront as the
// database-less run mode.
func Load(ctx context.Context, db *sql.DB, logger *zap.Logger) ([]models.Product, error) {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	if count == 0 {
		if err := seed(ctx, db); err != nil {
			return nil, err
		}
		logger.Info("Seeded empty products table")
	}

	rows, err := db.QueryContext(ctx,
		"SELECT id, name, price, image, category, description, rating, in_stock FROM products ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Category, &p.Description, &p.Rating, &p.InStock); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	logger.Info("Catalog loaded", zap.Int("products", len(products)))
	return products, nil
}

func seed(ctx context.Context, db *sql.DB) error {
	for _, p := range Products() {
		_, err := db.ExecContext(ctx,
			"INSERT INTO products (id, name, price, image, category, description, rating, in_stock) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
			p.ID, p.Name, p.Price, p.Image, p.Category, p.Description, p.Rating, p.InStock,
		)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
		}
	}
	return nil
}
