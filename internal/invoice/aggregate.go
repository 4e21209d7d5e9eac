package invoice

import "github.com/MKhiriev/go-invoice-audit/models"

// Risk score cut points shared by the flagged count and the risk badges.
const (
	MediumRiskThreshold = 40
	HighRiskThreshold   = 70
)

// Aggregate computes the summary cards over the whole collection. It is
// independent of any query: callers pass the unfiltered records.
func Aggregate(records []models.Invoice) models.Metrics {
	var m models.Metrics
	for _, inv := range records {
		switch inv.Type {
		case models.Sales:
			m.TotalSalesAmount += inv.Amount
		case models.Purchase:
			m.TotalPurchaseAmount += inv.Amount
		}
		if IsFlagged(inv) {
			m.FlaggedCount++
		}
		if IsPending(inv) {
			m.PendingCount++
		}
	}
	return m
}

// IsFlagged reports whether the invoice counts as flagged. The decision uses
// the risk score only, never the status label.
func IsFlagged(inv models.Invoice) bool {
	return inv.RiskScore >= HighRiskThreshold
}

// IsPending reports whether the invoice still awaits a decision.
func IsPending(inv models.Invoice) bool {
	return inv.Status == models.StatusPending || inv.Status == models.StatusUnderReview
}

// RiskLevelFor buckets a score: low below 40, medium from 40 to 69, high from
// 70.
func RiskLevelFor(score int) models.RiskLevel {
	switch {
	case score >= HighRiskThreshold:
		return models.RiskHigh
	case score >= MediumRiskThreshold:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}
