package adaptor

import (
	"errors"
	"net/http"

	"delivery-backend/internal/usecase"
	"delivery-backend/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Order    *OrderHandler
	Customer *CustomerHandler
	Catalog  *CatalogHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Order:    NewOrderHandler(service.Order, log),
		Customer: NewCustomerHandler(service.Customer, log),
		Catalog:  NewCatalogHandler(service.Catalog, log),
	}
}

// handleServiceError maps a service error category to its status code. The
// message of a ServiceError is sent as is; anything else is hidden behind a
// generic 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	msg := "Internal server error"
	var svcErr *usecase.ServiceError
	if errors.As(err, &svcErr) {
		msg = svcErr.Message
	}

	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrAuthentication):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, msg)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, msg)

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, msg)

	case errors.Is(err, usecase.ErrProvider):
		log.Error(operation+" failed - provider error", zap.Error(err))
		utils.ResponseInternalError(w, msg)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, msg)
	}
}
