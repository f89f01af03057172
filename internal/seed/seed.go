// Package seed fills empty catalog collections at startup.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"delivery-backend/internal/data/entity"
	"delivery-backend/internal/data/repository"

	"go.uber.org/zap"
)

//go:embed data/*.json
var builtin embed.FS

// Seed imports each catalog kind that is still empty. A `<kind>.json` array
// in dataDir wins over the built-in data for that kind; kinds with neither
// stay empty. Collections that already hold items are never touched.
func Seed(ctx context.Context, repo repository.CatalogRepository, dataDir string, log *zap.Logger) error {
	log = log.With(zap.String("component", "seed"))

	for _, kind := range entity.CatalogKinds {
		count, err := repo.Count(ctx, kind)
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		items, source, err := load(kind, dataDir)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			continue
		}

		for _, item := range items {
			if _, err := repo.Append(ctx, kind, item); err != nil {
				return fmt.Errorf("seed %s: %w", kind, err)
			}
		}

		log.Info("Catalog seeded",
			zap.String("kind", string(kind)),
			zap.String("source", source),
			zap.Int("items", len(items)))
	}

	return nil
}

func load(kind entity.CatalogKind, dataDir string) ([]json.RawMessage, string, error) {
	name := string(kind) + ".json"

	if dataDir != "" {
		path := filepath.Join(dataDir, name)
		data, err := os.ReadFile(path)
		if err == nil {
			items, err := decode(data)
			if err != nil {
				return nil, "", fmt.Errorf("read %s: %w", path, err)
			}
			return items, path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("read %s: %w", path, err)
		}
	}

	data, err := builtin.ReadFile("data/" + name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}

	items, err := decode(data)
	if err != nil {
		return nil, "", fmt.Errorf("builtin %s: %w", name, err)
	}
	return items, "builtin", nil
}

// decode expects a JSON array of objects.
func decode(data []byte) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	for i, item := range items {
		var obj map[string]any
		if err := json.Unmarshal(item, &obj); err != nil || obj == nil {
			return nil, fmt.Errorf("item %d is not a JSON object", i)
		}
	}
	return items, nil
}
