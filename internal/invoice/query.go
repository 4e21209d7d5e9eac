package invoice

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/MKhiriev/go-invoice-audit/models"
)

// Query returns the invoices matching cfg, in cfg's order:
//  1. records whose type differs from a non-All type filter are dropped;
//  2. if the trimmed search text is non-empty, records whose id, vendor or
//     status does not contain it (case-insensitively) are dropped;
//  3. the rest is sorted stably by the sort field and direction.
//
// Numeric fields compare by value and string fields by English collation.
// Records that compare equal keep their input order in both directions.
func Query(records []models.Invoice, cfg models.QueryConfig) []models.Invoice {
	cfg = cfg.Normalize()
	needle := strings.ToLower(strings.TrimSpace(cfg.SearchText))

	out := make([]models.Invoice, 0, len(records))
	for _, inv := range records {
		if cfg.TypeFilter != models.FilterAll && models.TypeFilter(inv.Type) != cfg.TypeFilter {
			continue
		}
		if needle != "" && !matches(inv, needle) {
			continue
		}
		out = append(out, inv)
	}

	compare := comparator(cfg.SortField)
	if cfg.SortDirection == models.Asc {
		slices.SortStableFunc(out, compare)
	} else {
		slices.SortStableFunc(out, func(a, b models.Invoice) int { return compare(b, a) })
	}

	return out
}

func matches(inv models.Invoice, needle string) bool {
	return strings.Contains(strings.ToLower(inv.ID), needle) ||
		strings.Contains(strings.ToLower(inv.Vendor), needle) ||
		strings.Contains(strings.ToLower(string(inv.Status)), needle)
}

// comparator returns an ascending comparison for field. Unknown fields
// compare everything as equal, which keeps the input order.
func comparator(field models.SortField) func(a, b models.Invoice) int {
	switch field {
	case models.SortByAmount:
		return func(a, b models.Invoice) int { return cmp.Compare(a.Amount, b.Amount) }
	case models.SortByRiskScore:
		return func(a, b models.Invoice) int { return cmp.Compare(a.RiskScore, b.RiskScore) }
	}

	key := stringKey(field)
	if key == nil {
		return func(models.Invoice, models.Invoice) int { return 0 }
	}

	// a Collator keeps internal buffers and is not safe for concurrent use
	c := collate.New(language.English)
	return func(a, b models.Invoice) int { return c.CompareString(key(a), key(b)) }
}

func stringKey(field models.SortField) func(models.Invoice) string {
	switch field {
	case models.SortByID:
		return func(inv models.Invoice) string { return inv.ID }
	case models.SortByVendor:
		return func(inv models.Invoice) string { return inv.Vendor }
	case models.SortByDate:
		// ISO dates order correctly as strings
		return func(inv models.Invoice) string { return inv.Date }
	}
	return nil
}

// ToggleSort applies a click on a column header: the current field flips
// direction, any other field becomes the sort field in descending order.
func ToggleSort(cfg models.QueryConfig, field models.SortField) models.QueryConfig {
	cfg = cfg.Normalize()
	if cfg.SortField == field {
		if cfg.SortDirection == models.Asc {
			cfg.SortDirection = models.Desc
		} else {
			cfg.SortDirection = models.Asc
		}
		return cfg
	}

	cfg.SortField = field
	cfg.SortDirection = models.Desc
	return cfg
}

// NextTypeFilter cycles All -> Sales -> Purchase -> All.
func NextTypeFilter(f models.TypeFilter) models.TypeFilter {
	switch f {
	case models.FilterAll, "":
		return models.FilterSales
	case models.FilterSales:
		return models.FilterPurchase
	default:
		return models.FilterAll
	}
}
