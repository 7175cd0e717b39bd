package repository

import (
	"context"
	"fmt"

	"laundry-service/internal/data/entity"
	"laundry-service/pkg/database"

	"go.uber.org/zap"
)

type LaundryItemRepository interface {
	FindAll(ctx context.Context) ([]*entity.LaundryItem, error)
}

type laundryItemRepository struct {
	db  database.Executor
	log *zap.Logger
}

func NewLaundryItemRepository(db database.Executor, log *zap.Logger) LaundryItemRepository {
	return &laundryItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "laundry_item")),
	}
}

// FindAll returns the catalog ordered by name
func (r *laundryItemRepository) FindAll(ctx context.Context) ([]*entity.LaundryItem, error) {
	query := `
		SELECT laundry_item_id, name, base_price
		FROM laundry_items
		ORDER BY name
	`

	var items []*entity.LaundryItem
	err := r.db.FetchAll(ctx, func(row database.Scanner) error {
		var item entity.LaundryItem
		if err := row.Scan(&item.ID, &item.Name, &item.BasePrice); err != nil {
			return err
		}
		items = append(items, &item)
		return nil
	}, query)

	if err != nil {
		r.log.Error("Failed to load laundry items", zap.Error(err))
		return nil, fmt.Errorf("find all laundry items: %w", err)
	}

	return items, nil
}
