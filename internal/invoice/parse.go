package invoice

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-invoice-audit/models"
)

// ParseTypeFilter accepts "all", "sales" or "purchase" in any case. An empty
// string means all.
func ParseTypeFilter(s string) (models.TypeFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return models.FilterAll, nil
	case "sales":
		return models.FilterSales, nil
	case "purchase":
		return models.FilterPurchase, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTypeFilter, s)
}

// ParseInvoiceType accepts "sales" or "purchase" in any case.
func ParseInvoiceType(s string) (models.InvoiceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sales":
		return models.Sales, nil
	case "purchase":
		return models.Purchase, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidInvoiceType, s)
}

// ParseSortField accepts the JSON field names of [models.Invoice] that can
// be sorted on. An empty string means date.
func ParseSortField(s string) (models.SortField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "date":
		return models.SortByDate, nil
	case "id":
		return models.SortByID, nil
	case "vendor":
		return models.SortByVendor, nil
	case "amount":
		return models.SortByAmount, nil
	case "riskscore", "risk":
		return models.SortByRiskScore, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortField, s)
}

// ParseSortDirection accepts "asc" or "desc". An empty string means desc.
func ParseSortDirection(s string) (models.SortDirection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "desc":
		return models.Desc, nil
	case "asc":
		return models.Asc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortDirection, s)
}

// ParseAction accepts "view", "download" or "report".
func ParseAction(s string) (models.InvoiceAction, error) {
	switch a := models.InvoiceAction(strings.ToLower(strings.TrimSpace(s))); a {
	case models.ActionView, models.ActionDownload, models.ActionReport:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
}

// ParseQuery builds a [models.QueryConfig] from raw transport values.
func ParseQuery(search, typeFilter, sortField, sortDir string) (models.QueryConfig, error) {
	tf, err := ParseTypeFilter(typeFilter)
	if err != nil {
		return models.QueryConfig{}, err
	}
	sf, err := ParseSortField(sortField)
	if err != nil {
		return models.QueryConfig{}, err
	}
	sd, err := ParseSortDirection(sortDir)
	if err != nil {
		return models.QueryConfig{}, err
	}

	return models.QueryConfig{
		SearchText:    search,
		TypeFilter:    tf,
		SortField:     sf,
		SortDirection: sd,
	}, nil
}
