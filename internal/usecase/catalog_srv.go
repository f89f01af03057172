package usecase

import (
	"bytes"
	"context"
	"encoding/json"

	"delivery-backend/internal/data/entity"
	"delivery-backend/internal/data/repository"

	"go.uber.org/zap"
)

// CatalogService serves the list-backed collections: products, stores,
// drivers, reviews and mapview. Items are stored as submitted.
type CatalogService interface {
	List(ctx context.Context, kind entity.CatalogKind) ([]json.RawMessage, error)
	Add(ctx context.Context, kind entity.CatalogKind, payload []byte) (json.RawMessage, error)
}

type catalogService struct {
	catalog repository.CatalogRepository
	log     *zap.Logger
}

func NewCatalogService(catalog repository.CatalogRepository, log *zap.Logger) CatalogService {
	return &catalogService{
		catalog: catalog,
		log:     log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) List(ctx context.Context, kind entity.CatalogKind) ([]json.RawMessage, error) {
	if !kind.Valid() {
		return nil, ErrUnknownCollection
	}
	return s.catalog.List(ctx, kind)
}

// Add appends payload if it is a JSON object. No other schema is enforced.
func (s *catalogService) Add(ctx context.Context, kind entity.CatalogKind, payload []byte) (json.RawMessage, error) {
	if !kind.Valid() {
		return nil, ErrUnknownCollection
	}

	var obj map[string]any
	if err := json.Unmarshal(payload, &obj); err != nil || obj == nil {
		return nil, ErrInvalidPayload
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, payload); err != nil {
		return nil, ErrInvalidPayload
	}

	item, err := s.catalog.Append(ctx, kind, compact.Bytes())
	if err != nil {
		return nil, err
	}

	s.log.Info("Catalog item added", zap.String("kind", string(kind)), zap.Int64("item_id", item.ID))
	return item.Payload, nil
}
