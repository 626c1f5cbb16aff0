// Package seed loads the sample catalog into an empty products table.
package seed

import (
	"context"
	"fmt"

	"voyager-gear/internal/domain"
	"voyager-gear/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func product(name, description, price string, category domain.ProductCategory, imageURL string, stock int) *domain.Product {
	return &domain.Product{
		Name:        name,
		Description: description,
		Price:       decimal.RequireFromString(price),
		Category:    category,
		ImageURL:    imageURL,
		Stock:       stock,
	}
}

// Run inserts Products when the catalog is empty and returns how many rows
// it created. A populated catalog is left alone.
func Run(ctx context.Context, products repository.ProductRepository, logger *zap.Logger) (int, error) {
	existing, err := products.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	if existing > 0 {
		logger.Info("Catalog already populated, skipping seed", zap.Int("products", existing))
		return 0, nil
	}

	perCategory := make(map[domain.ProductCategory]int)
	created := 0
	for _, p := range Products() {
		if err := products.Create(ctx, p); err != nil {
			return created, fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
		perCategory[p.Category]++
		created++
	}

	fields := []zap.Field{zap.Int("products", created)}
	for _, category := range domain.Categories {
		fields = append(fields, zap.Int(string(category), perCategory[category]))
	}
	logger.Info("Catalog seeded", fields...)

	return created, nil
}
