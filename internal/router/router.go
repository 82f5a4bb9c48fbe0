package router

import (
	"net/http"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/handler"
	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/metrics"
	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates the API HTTP router with all routes and middleware configured.
func New(
	customerHandler *handler.CustomerHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	reportHandler *handler.ReportHandler,
	analyzeHandler *handler.AnalyzeHandler,
	m *metrics.Metrics,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (not instrumented)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	mux.Handle("GET /metrics", m.Handler())

	route := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, m.Instrument(pattern, h))
	}

	route("GET /api/customers", customerHandler.GetAll)
	route("POST /api/customers", customerHandler.Create)
	route("GET /api/customers/{id}", customerHandler.GetByID)
	route("PUT /api/customers/{id}", customerHandler.Update)
	route("DELETE /api/customers/{id}", customerHandler.Delete)

	route("GET /api/products", productHandler.GetAll)
	route("POST /api/products", productHandler.Create)
	route("GET /api/products/{id}", productHandler.GetByID)
	route("PUT /api/products/{id}", productHandler.Update)
	route("DELETE /api/products/{id}", productHandler.Delete)

	route("GET /api/orders", orderHandler.GetAll)
	route("POST /api/orders", orderHandler.Create)
	route("GET /api/orders/{id}", orderHandler.GetByID)
	route("PUT /api/orders/{id}", orderHandler.Update)
	route("DELETE /api/orders/{id}", orderHandler.Delete)

	route("GET /api/reports/sales-summary", reportHandler.SalesSummary)
	route("GET /api/reports/pending-orders", reportHandler.PendingOrders)
	route("GET /api/reports/top-customers", reportHandler.TopCustomers)

	route("POST /api/analyze", analyzeHandler.Analyze)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
