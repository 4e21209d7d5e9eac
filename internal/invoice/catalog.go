package invoice

import (
	"slices"

	"github.com/MKhiriev/go-invoice-audit/models"
)

var catalog = []models.Invoice{
	{ID: "INV-001", Vendor: "Reliance Industries", Type: models.Purchase, Amount: 245000, Date: "2026-02-01", Status: models.StatusVerified, RiskScore: 12, AnomalyType: models.AnomalyNone},
	{ID: "INV-002", Vendor: "Tata Motors", Type: models.Sales, Amount: 520000, Date: "2026-02-02", Status: models.StatusPending, RiskScore: 45, AnomalyType: "Unusual Volume"},
	{ID: "INV-003", Vendor: "Infosys Ltd", Type: models.Purchase, Amount: 180000, Date: "2026-01-30", Status: models.StatusFlagged, RiskScore: 87, AnomalyType: "Duplicate Invoice"},
	{ID: "INV-004", Vendor: "Wipro Technologies", Type: models.Sales, Amount: 340000, Date: "2026-01-28", Status: models.StatusVerified, RiskScore: 8, AnomalyType: models.AnomalyNone},
	{ID: "INV-005", Vendor: "Mahindra & Mahindra", Type: models.Purchase, Amount: 420000, Date: "2026-01-25", Status: models.StatusUnderReview, RiskScore: 62, AnomalyType: "Weekend Transaction"},
	{ID: "INV-006", Vendor: "HCL Technologies", Type: models.Sales, Amount: 890000, Date: "2026-01-22", Status: models.StatusVerified, RiskScore: 5, AnomalyType: models.AnomalyNone},
	{ID: "INV-007", Vendor: "Bajaj Finance", Type: models.Purchase, Amount: 156000, Date: "2026-01-20", Status: models.StatusFlagged, RiskScore: 91, AnomalyType: "High Value Outlier"},
	{ID: "INV-008", Vendor: "Adani Enterprises", Type: models.Sales, Amount: 675000, Date: "2026-01-18", Status: models.StatusPending, RiskScore: 38, AnomalyType: "New Vendor"},
	{ID: "INV-009", Vendor: "Sun Pharma", Type: models.Purchase, Amount: 298000, Date: "2026-01-15", Status: models.StatusVerified, RiskScore: 15, AnomalyType: models.AnomalyNone},
	{ID: "INV-010", Vendor: "Larsen & Toubro", Type: models.Sales, Amount: 1120000, Date: "2026-01-12", Status: models.StatusUnderReview, RiskScore: 55, AnomalyType: "Benford's Law"},
}

// Catalog returns a copy of the built-in sample collection shown on the
// dashboard.
func Catalog() []models.Invoice {
	return slices.Clone(catalog)
}

// FindByID returns the first invoice with the given id.
func FindByID(records []models.Invoice, id string) (models.Invoice, bool) {
	i := slices.IndexFunc(records, func(inv models.Invoice) bool { return inv.ID == id })
	if i < 0 {
		return models.Invoice{}, false
	}
	return records[i], true
}
