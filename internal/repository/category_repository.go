package repository

import (
	"context"
	"database/sql"
	"fmt"

	"voyager-gear/internal/domain"
)

// CategoryRepository reports how the catalog is spread over categories
type CategoryRepository interface {
	// Summaries returns every known category, including empty ones, with
	// its product count.
	Summaries(ctx context.Context) ([]domain.CategorySummary, error)
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new instance of CategoryRepository
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Summaries(ctx context.Context) ([]domain.CategorySummary, error) {
	query := `
		SELECT category, COUNT(*)
		FROM products
		GROUP BY category
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count products per category: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.ProductCategory]int)
	for rows.Next() {
		var category domain.ProductCategory
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		counts[category] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	summaries := make([]domain.CategorySummary, 0, len(domain.Categories))
	for _, category := range domain.Categories {
		summaries = append(summaries, domain.CategorySummary{
			Category:     category,
			ProductCount: counts[category],
		})
	}

	return summaries, nil
}
