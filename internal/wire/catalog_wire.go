package wire

import (
	"delivery-backend/internal/adaptor"
	"delivery-backend/internal/data/entity"

	"github.com/go-chi/chi/v5"
)

// wireCatalog registers GET and POST for every list-backed collection:
// /api/products, /api/stores, /api/drivers, /api/reviews and /api/mapview.
func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	for _, kind := range entity.CatalogKinds {
		path := "/api/" + string(kind)
		r.Get(path, catalogHandler.List(kind))
		r.Post(path, catalogHandler.Add(kind))
	}
}
