package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-invoice-audit/internal/app"
	"github.com/MKhiriev/go-invoice-audit/internal/invoice"
	"github.com/MKhiriev/go-invoice-audit/internal/logger"
	"github.com/MKhiriev/go-invoice-audit/internal/metrics"
	"github.com/MKhiriev/go-invoice-audit/models"
)

// IDGenerator issues receipt identifiers.
type IDGenerator interface {
	Generate() string
}

// dashboardService serves queries over a fixed invoice collection.
// The collection is never mutated.
type dashboardService struct {
	invoices []models.Invoice
	ids      IDGenerator
	recorder metrics.Recorder

	logger *logger.Logger
}

// NewDashboardService serves the given invoices. Pass invoice.Catalog() for
// the built-in sample data.
func NewDashboardService(invoices []models.Invoice, ids IDGenerator, recorder metrics.Recorder, logger *logger.Logger) DashboardService {
	return &dashboardService{
		invoices: invoices,
		ids:      ids,
		recorder: recorder,
		logger:   logger,
	}
}

func (d *dashboardService) Invoices(ctx context.Context, cfg models.QueryConfig) []models.Invoice {
	result := invoice.Query(d.invoices, cfg)
	d.recorder.RecordInvoiceQuery(len(result))
	return result
}

// Metrics aggregates the whole collection regardless of any active query.
func (d *dashboardService) Metrics(ctx context.Context) models.Metrics {
	return invoice.Aggregate(d.invoices)
}

func (d *dashboardService) Invoice(ctx context.Context, id string) (models.Invoice, error) {
	inv, ok := invoice.FindByID(d.invoices, id)
	if !ok {
		return models.Invoice{}, fmt.Errorf("%w: %s", ErrInvoiceNotFound, id)
	}
	return inv, nil
}

// AcknowledgeUpload answers an upload request. Uploads are not processed;
// the receipt only tells the user so.
func (d *dashboardService) AcknowledgeUpload(ctx context.Context, invoiceType models.InvoiceType) (models.UploadReceipt, error) {
	if invoiceType != models.Sales && invoiceType != models.Purchase {
		return models.UploadReceipt{}, fmt.Errorf("%w: %q", invoice.ErrInvalidInvoiceType, invoiceType)
	}

	receipt := models.UploadReceipt{
		ID:      d.ids.Generate(),
		Type:    invoiceType,
		Title:   fmt.Sprintf(app.TitleUploadFormat, invoiceType),
		Message: app.MsgUploadPending,
	}

	logger.FromContext(ctx).Info().
		Str("func", "*dashboardService.AcknowledgeUpload").
		Str("receipt_id", receipt.ID).
		Str("type", string(invoiceType)).
		Msg("upload acknowledged")

	return receipt, nil
}

// InvoiceAction returns the notice for a row action on an existing invoice.
func (d *dashboardService) InvoiceAction(ctx context.Context, id string, action models.InvoiceAction) (models.ActionNotice, error) {
	if _, err := d.Invoice(ctx, id); err != nil {
		return models.ActionNotice{}, err
	}

	notice := models.ActionNotice{InvoiceID: id, Action: action}
	switch action {
	case models.ActionView:
		notice.Title, notice.Message = app.TitleViewInvoice, fmt.Sprintf(app.MsgViewingFormat, id)
	case models.ActionDownload:
		notice.Title, notice.Message = app.TitleDownload, fmt.Sprintf(app.MsgDownloadingFormat, id)
	case models.ActionReport:
		notice.Title, notice.Message = app.TitleAuditReport, fmt.Sprintf(app.MsgReportFormat, id)
	default:
		return models.ActionNotice{}, fmt.Errorf("%w: %q", invoice.ErrInvalidAction, action)
	}

	return notice, nil
}
