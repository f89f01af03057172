package adaptor

import (
	"io"
	"net/http"
	"strings"

	"delivery-backend/internal/data/entity"
	"delivery-backend/internal/usecase"
	"delivery-backend/pkg/utils"

	"go.uber.org/zap"
)

// maxCatalogBody caps a single catalog item.
const maxCatalogBody = 1 << 20

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// List returns the handler for GET /api/<kind>
func (h *CatalogHandler) List(kind entity.CatalogKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.service.List(r.Context(), kind)
		if err != nil {
			handleServiceError(w, h.log, err, "list "+string(kind))
			return
		}

		utils.ResponseSuccess(w, items)
	}
}

// Add returns the handler for POST /api/<kind>. The created item is echoed
// under the kind's singular name.
func (h *CatalogHandler) Add(kind entity.CatalogKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.add(w, r, kind)
	}
}

func (h *CatalogHandler) add(w http.ResponseWriter, r *http.Request, kind entity.CatalogKind) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxCatalogBody))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	item, err := h.service.Add(r.Context(), kind, body)
	if err != nil {
		handleServiceError(w, h.log, err, "add "+string(kind))
		return
	}

	singular := kind.Singular()
	utils.ResponseCreated(w, map[string]any{
		"message": strings.ToUpper(singular[:1]) + singular[1:] + " added successfully!",
		singular:  item,
	})
}
