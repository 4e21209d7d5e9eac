package models

// InvoiceType tells whether an invoice was issued (sales) or received (purchase).
type InvoiceType string

const (
	Sales    InvoiceType = "Sales"
	Purchase InvoiceType = "Purchase"
)

// InvoiceStatus is the audit status shown next to each invoice.
type InvoiceStatus string

const (
	StatusVerified    InvoiceStatus = "Verified"
	StatusPending     InvoiceStatus = "Pending"
	StatusFlagged     InvoiceStatus = "Flagged"
	StatusUnderReview InvoiceStatus = "Under Review"
)

// AnomalyNone is the anomaly label of invoices without detected anomalies.
const AnomalyNone = "None"

// Invoice is one audited invoice record. Amount is in whole currency units.
// Date is an ISO "YYYY-MM-DD" string and is compared as a string when sorting.
type Invoice struct {
	ID          string        `json:"id"`
	Vendor      string        `json:"vendor"`
	Type        InvoiceType   `json:"type"`
	Amount      int64         `json:"amount"`
	Date        string        `json:"date"`
	Status      InvoiceStatus `json:"status"`
	RiskScore   int           `json:"riskScore"`
	AnomalyType string        `json:"anomalyType"`
}

// TypeFilter restricts a query to one invoice type or lets all through.
type TypeFilter string

const (
	FilterAll      TypeFilter = "All"
	FilterSales    TypeFilter = TypeFilter(Sales)
	FilterPurchase TypeFilter = TypeFilter(Purchase)
)

// SortField names the invoice column a query is ordered by.
type SortField string

const (
	SortByID        SortField = "id"
	SortByVendor    SortField = "vendor"
	SortByAmount    SortField = "amount"
	SortByDate      SortField = "date"
	SortByRiskScore SortField = "riskScore"
)

// SortDirection is the ordering direction of a query.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// QueryConfig controls the derived invoice view. Zero values mean defaults:
// no search, all types, sorted by date descending.
type QueryConfig struct {
	SearchText    string        `json:"search"`
	TypeFilter    TypeFilter    `json:"type"`
	SortField     SortField     `json:"sort"`
	SortDirection SortDirection `json:"dir"`
}

// Metrics are the portfolio-wide summary figures of the dashboard cards.
type Metrics struct {
	TotalSalesAmount    int64 `json:"totalSalesAmount"`
	TotalPurchaseAmount int64 `json:"totalPurchaseAmount"`
	FlaggedCount        int   `json:"flaggedCount"`
	PendingCount        int   `json:"pendingCount"`
}

// RiskLevel buckets a risk score for badges.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// UploadReceipt acknowledges an invoice upload request. Uploads never change
// the invoice collection.
type UploadReceipt struct {
	ID      string      `json:"id"`
	Type    InvoiceType `json:"type"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
}

// Normalize fills zero fields with the defaults: all types, sorted by date
// descending.
func (c QueryConfig) Normalize() QueryConfig {
	if c.TypeFilter == "" {
		c.TypeFilter = FilterAll
	}
	if c.SortField == "" {
		c.SortField = SortByDate
	}
	if c.SortDirection == "" {
		c.SortDirection = Desc
	}
	return c
}

// InvoiceAction is a per-row action offered by the dashboard.
type InvoiceAction string

const (
	ActionView     InvoiceAction = "view"
	ActionDownload InvoiceAction = "download"
	ActionReport   InvoiceAction = "report"
)

// ActionNotice is the acknowledgement shown for an invoice action.
type ActionNotice struct {
	InvoiceID string        `json:"invoiceId"`
	Action    InvoiceAction `json:"action"`
	Title     string        `json:"title"`
	Message   string        `json:"message"`
}
