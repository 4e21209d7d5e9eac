package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-invoice-audit/internal/app"
	"github.com/MKhiriev/go-invoice-audit/internal/invoice"
	"github.com/MKhiriev/go-invoice-audit/internal/service"
	"github.com/MKhiriev/go-invoice-audit/internal/utils"
	"github.com/MKhiriev/go-invoice-audit/models"
)

// invoiceView is an invoice with the values the table renders.
type invoiceView struct {
	models.Invoice
	RiskLevel       models.RiskLevel `json:"riskLevel"`
	AmountFormatted string           `json:"amountFormatted"`
}

type summaryCards struct {
	TotalSales     string `json:"totalSales"`
	TotalPurchases string `json:"totalPurchases"`
	FlaggedCount   int    `json:"flaggedCount"`
	PendingCount   int    `json:"pendingCount"`
}

type dashboardResponse struct {
	Welcome string         `json:"welcome"`
	Metrics models.Metrics `json:"metrics"`
	Cards   summaryCards   `json:"cards"`
}

func newInvoiceView(inv models.Invoice) invoiceView {
	return invoiceView{
		Invoice:         inv,
		RiskLevel:       invoice.RiskLevelFor(inv.RiskScore),
		AmountFormatted: invoice.FormatRupees(inv.Amount),
	}
}

func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	m := h.services.DashboardService.Metrics(ctx)

	state := models.LoggedOut()
	if profile, err := h.services.ProfileService.Profile(ctx); err == nil {
		state = models.LoggedIn(profile)
	}

	utils.WriteJSON(w, dashboardResponse{
		Welcome: fmt.Sprintf(app.MsgWelcomeOwnerFormat, service.WelcomeName(state)),
		Metrics: m,
		Cards: summaryCards{
			TotalSales:     invoice.FormatLakh(m.TotalSalesAmount),
			TotalPurchases: invoice.FormatLakh(m.TotalPurchaseAmount),
			FlaggedCount:   m.FlaggedCount,
			PendingCount:   m.PendingCount,
		},
	}, http.StatusOK)
}

// listInvoices serves GET /api/invoices?search=&type=&sort=&dir=.
func (h *Handler) listInvoices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	cfg, err := invoice.ParseQuery(q.Get("search"), q.Get("type"), q.Get("sort"), q.Get("dir"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	invoices := h.services.DashboardService.Invoices(r.Context(), cfg)

	views := make([]invoiceView, 0, len(invoices))
	for _, inv := range invoices {
		views = append(views, newInvoiceView(inv))
	}

	utils.WriteJSON(w, views, http.StatusOK)
}

func (h *Handler) getInvoice(w http.ResponseWriter, r *http.Request) {
	inv, err := h.services.DashboardService.Invoice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, newInvoiceView(inv), http.StatusOK)
}

func (h *Handler) invoiceAction(w http.ResponseWriter, r *http.Request) {
	action, err := invoice.ParseAction(chi.URLParam(r, "action"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	notice, err := h.services.DashboardService.InvoiceAction(r.Context(), chi.URLParam(r, "id"), action)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, notice, http.StatusOK)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	invoiceType, err := invoice.ParseInvoiceType(chi.URLParam(r, "type"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	receipt, err := h.services.DashboardService.AcknowledgeUpload(r.Context(), invoiceType)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, receipt, http.StatusAccepted)
}
