package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice-audit/models"
)

func ids(records []models.Invoice) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestQuery_DefaultsDateDesc(t *testing.T) {
	got := Query(Catalog(), models.QueryConfig{})

	assert.Equal(t, []string{
		"INV-002", "INV-001", "INV-003", "INV-004", "INV-005",
		"INV-006", "INV-007", "INV-008", "INV-009", "INV-010",
	}, ids(got))
}

func TestQuery_TypeFilter(t *testing.T) {
	for _, f := range []models.TypeFilter{models.FilterSales, models.FilterPurchase} {
		t.Run(string(f), func(t *testing.T) {
			got := Query(Catalog(), models.QueryConfig{TypeFilter: f})
			require.Len(t, got, 5)
			for _, inv := range got {
				assert.Equal(t, models.TypeFilter(inv.Type), f)
			}
		})
	}

	all := Query(Catalog(), models.QueryConfig{TypeFilter: models.FilterAll})
	assert.Len(t, all, 10)
}

// TestQuery_FilterKeepsRelativeOrder checks that filtering on its own never
// reorders: with every record comparing equal the output is a subsequence of
// the input.
func TestQuery_FilterKeepsRelativeOrder(t *testing.T) {
	records := []models.Invoice{
		{ID: "c", Type: models.Sales, Amount: 1},
		{ID: "a", Type: models.Purchase, Amount: 1},
		{ID: "b", Type: models.Sales, Amount: 1},
		{ID: "d", Type: models.Sales, Amount: 1},
	}

	got := Query(records, models.QueryConfig{TypeFilter: models.FilterSales, SortField: models.SortByAmount})
	assert.Equal(t, []string{"c", "b", "d"}, ids(got))
}

func TestQuery_SearchFlag(t *testing.T) {
	got := Query(Catalog(), models.QueryConfig{SearchText: "flag"})

	assert.ElementsMatch(t, []string{"INV-003", "INV-007"}, ids(got))
	for _, inv := range got {
		assert.Equal(t, models.StatusFlagged, inv.Status)
	}
}

func TestQuery_Search(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "by id", search: "inv-01", want: []string{"INV-010"}},
		{name: "by vendor any case", search: "TATA", want: []string{"INV-002"}},
		{name: "trimmed", search: "  sun  ", want: []string{"INV-009"}},
		{name: "by status with space", search: "under review", want: []string{"INV-005", "INV-010"}},
		{name: "ampersand", search: "&", want: []string{"INV-005", "INV-010"}},
		{name: "whitespace only is no filter", search: "   ", want: ids(Query(Catalog(), models.QueryConfig{}))},
		{name: "no match", search: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Query(Catalog(), models.QueryConfig{SearchText: tt.search})
			assert.ElementsMatch(t, tt.want, ids(got))
		})
	}
}

func TestQuery_SearchDoesNotLookAtAnomaly(t *testing.T) {
	got := Query(Catalog(), models.QueryConfig{SearchText: "duplicate"})
	assert.Empty(t, got)
}

func TestQuery_StableOnEqualAmounts(t *testing.T) {
	records := []models.Invoice{
		{ID: "X", Amount: 100},
		{ID: "Y", Amount: 100},
		{ID: "Z", Amount: 50},
	}

	asc := Query(records, models.QueryConfig{SortField: models.SortByAmount, SortDirection: models.Asc})
	assert.Equal(t, []string{"Z", "X", "Y"}, ids(asc))

	desc := Query(records, models.QueryConfig{SortField: models.SortByAmount, SortDirection: models.Desc})
	assert.Equal(t, []string{"X", "Y", "Z"}, ids(desc))
}

func TestQuery_ConcreteScenario(t *testing.T) {
	records := []models.Invoice{
		{ID: "INV-A", Vendor: "Alpha", Type: models.Sales, Amount: 100, Date: "2026-01-02", Status: models.StatusVerified, RiskScore: 10, AnomalyType: models.AnomalyNone},
		{ID: "INV-B", Vendor: "Beta", Type: models.Purchase, Amount: 300, Date: "2026-01-01", Status: models.StatusFlagged, RiskScore: 80, AnomalyType: "Duplicate Invoice"},
	}

	got := Query(records, models.QueryConfig{
		TypeFilter:    models.FilterAll,
		SortField:     models.SortByAmount,
		SortDirection: models.Desc,
	})
	assert.Equal(t, []string{"INV-B", "INV-A"}, ids(got))

	m := Aggregate(records)
	assert.Equal(t, models.Metrics{
		TotalSalesAmount:    100,
		TotalPurchaseAmount: 300,
		FlaggedCount:        1,
		PendingCount:        0,
	}, m)
}

// TestQuery_VerifiedButHighRisk pins that flagged counts risk only: A is
// Verified yet risky, B is Pending but safe.
func TestQuery_VerifiedButHighRisk(t *testing.T) {
	a := models.Invoice{ID: "A", Type: models.Sales, Amount: 100, RiskScore: 80, Status: models.StatusVerified}
	b := models.Invoice{ID: "B", Type: models.Purchase, Amount: 50, RiskScore: 30, Status: models.StatusPending}
	records := []models.Invoice{a, b}

	assert.Equal(t, models.Metrics{
		TotalSalesAmount:    100,
		TotalPurchaseAmount: 50,
		FlaggedCount:        1,
		PendingCount:        1,
	}, Aggregate(records))

	got := Query(records, models.QueryConfig{TypeFilter: models.FilterPurchase})
	assert.Equal(t, []models.Invoice{b}, got)
}

func TestQuery_SortFields(t *testing.T) {
	tests := []struct {
		name  string
		cfg   models.QueryConfig
		first string
		last  string
	}{
		{name: "vendor asc", cfg: models.QueryConfig{SortField: models.SortByVendor, SortDirection: models.Asc}, first: "INV-008", last: "INV-004"},
		{name: "vendor desc", cfg: models.QueryConfig{SortField: models.SortByVendor, SortDirection: models.Desc}, first: "INV-004", last: "INV-008"},
		{name: "id asc", cfg: models.QueryConfig{SortField: models.SortByID, SortDirection: models.Asc}, first: "INV-001", last: "INV-010"},
		{name: "amount desc", cfg: models.QueryConfig{SortField: models.SortByAmount, SortDirection: models.Desc}, first: "INV-010", last: "INV-007"},
		{name: "risk desc", cfg: models.QueryConfig{SortField: models.SortByRiskScore, SortDirection: models.Desc}, first: "INV-007", last: "INV-006"},
		{name: "date asc", cfg: models.QueryConfig{SortField: models.SortByDate, SortDirection: models.Asc}, first: "INV-010", last: "INV-002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Query(Catalog(), tt.cfg)
			require.Len(t, got, 10)
			assert.Equal(t, tt.first, got[0].ID)
			assert.Equal(t, tt.last, got[len(got)-1].ID)
		})
	}
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	records := Catalog()
	before := Catalog()

	_ = Query(records, models.QueryConfig{SortField: models.SortByAmount, SortDirection: models.Asc})
	assert.Equal(t, before, records)
}

func TestQuery_UnknownSortFieldKeepsOrder(t *testing.T) {
	records := Catalog()
	got := Query(records, models.QueryConfig{SortField: "anomalyType"})
	assert.Equal(t, ids(records), ids(got))
}

func TestToggleSort(t *testing.T) {
	cfg := models.QueryConfig{}

	cfg = ToggleSort(cfg, models.SortByDate)
	assert.Equal(t, models.SortByDate, cfg.SortField)
	assert.Equal(t, models.Asc, cfg.SortDirection, "same field flips")

	cfg = ToggleSort(cfg, models.SortByDate)
	assert.Equal(t, models.Desc, cfg.SortDirection)

	cfg = ToggleSort(cfg, models.SortByDate)
	cfg = ToggleSort(cfg, models.SortByAmount)
	assert.Equal(t, models.SortByAmount, cfg.SortField)
	assert.Equal(t, models.Desc, cfg.SortDirection, "new field resets to desc")
}

func TestNextTypeFilter(t *testing.T) {
	assert.Equal(t, models.FilterSales, NextTypeFilter(models.FilterAll))
	assert.Equal(t, models.FilterPurchase, NextTypeFilter(models.FilterSales))
	assert.Equal(t, models.FilterAll, NextTypeFilter(models.FilterPurchase))
	assert.Equal(t, models.FilterSales, NextTypeFilter(""))
}
