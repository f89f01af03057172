// internal/wire/wire.go
package wire

import (
	"net/http"

	"delivery-backend/internal/adaptor"
	"delivery-backend/internal/data/repository"
	"delivery-backend/internal/usecase"
	"delivery-backend/pkg/middleware"
	"delivery-backend/pkg/notify"
	"delivery-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the assembled HTTP surface.
type App struct {
	Router   *chi.Mux
	Registry *prometheus.Registry
}

// Wiring builds services, handlers and routes on top of repo and notifier.
func Wiring(repo *repository.Repository, notifier *notify.Notifier, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, notifier, config, logger)
	handler := adaptor.NewHandler(service, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := setupRouter(handler, registry, config, logger)

	return &App{
		Router:   router,
		Registry: registry,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	registry *prometheus.Registry,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.NewMetrics(registry).Handler)

	wireAuth(r, handler.Auth, config, logger)
	wireOrder(r, handler.Order)
	wireCustomer(r, handler.Customer)
	wireCatalog(r, handler.Catalog)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}
