package handler

import (
	"net/http"

	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/model"
	"github.com/murilosilvaof/logap-desafio-dev-junior/internal/service"

	"github.com/rs/zerolog"
)

// ReportHandler serves the aggregate sales reports.
type ReportHandler struct {
	service service.ReportService
	logger  zerolog.Logger
}

// NewReportHandler creates a new report handler.
func NewReportHandler(service service.ReportService, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger.With().Str("handler", "report").Logger(),
	}
}

// SalesSummary handles GET /api/reports/sales-summary requests.
func (h *ReportHandler) SalesSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.SalesSummary(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// PendingOrders handles GET /api/reports/pending-orders requests.
func (h *ReportHandler) PendingOrders(w http.ResponseWriter, r *http.Request) {
	pending, err := h.service.PendingOrders(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if pending == nil {
		pending = []model.PendingOrder{}
	}
	writeJSON(w, http.StatusOK, pending)
}

// TopCustomers handles GET /api/reports/top-customers requests.
func (h *ReportHandler) TopCustomers(w http.ResponseWriter, r *http.Request) {
	top, err := h.service.TopCustomers(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if top == nil {
		top = []model.TopCustomer{}
	}
	writeJSON(w, http.StatusOK, top)
}
