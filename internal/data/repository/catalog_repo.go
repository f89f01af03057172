package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"delivery-backend/internal/data/entity"
	"delivery-backend/pkg/database"

	"go.uber.org/zap"
)

// CatalogRepository is an append-only store of raw JSON objects grouped by
// kind. Items come back in insertion order.
type CatalogRepository interface {
	List(ctx context.Context, kind entity.CatalogKind) ([]json.RawMessage, error)
	Append(ctx context.Context, kind entity.CatalogKind, payload json.RawMessage) (*entity.CatalogItem, error)
	Count(ctx context.Context, kind entity.CatalogKind) (int64, error)
}

type catalogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCatalogRepository(db database.PgxIface, log *zap.Logger) CatalogRepository {
	return &catalogRepository{
		db:  db,
		log: log.With(zap.String("repository", "catalog")),
	}
}

func (r *catalogRepository) List(ctx context.Context, kind entity.CatalogKind) ([]json.RawMessage, error) {
	query := `SELECT payload FROM catalog_items WHERE kind = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, string(kind))
	if err != nil {
		r.log.Error("Failed to list catalog items", zap.Error(err), zap.String("kind", string(kind)))
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	defer rows.Close()

	items := []json.RawMessage{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", kind, err)
		}
		items = append(items, json.RawMessage(payload))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", kind, err)
	}

	return items, nil
}

func (r *catalogRepository) Append(ctx context.Context, kind entity.CatalogKind, payload json.RawMessage) (*entity.CatalogItem, error) {
	query := `
		INSERT INTO catalog_items (kind, payload)
		VALUES ($1, $2::json)
		RETURNING id, created_at
	`

	item := &entity.CatalogItem{Kind: kind, Payload: payload}
	err := r.db.QueryRow(ctx, query, string(kind), string(payload)).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		r.log.Error("Failed to append catalog item", zap.Error(err), zap.String("kind", string(kind)))
		return nil, fmt.Errorf("append %s: %w", kind, err)
	}

	return item, nil
}

func (r *catalogRepository) Count(ctx context.Context, kind entity.CatalogKind) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM catalog_items WHERE kind = $1`, string(kind)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", kind, err)
	}
	return count, nil
}
