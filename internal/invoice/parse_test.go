package invoice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice-audit/models"
)

func TestParseQuery(t *testing.T) {
	cfg, err := ParseQuery(" tata ", "Sales", "riskScore", "ASC")
	require.NoError(t, err)
	assert.Equal(t, models.QueryConfig{
		SearchText:    " tata ",
		TypeFilter:    models.FilterSales,
		SortField:     models.SortByRiskScore,
		SortDirection: models.Asc,
	}, cfg)

	cfg, err = ParseQuery("", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, models.QueryConfig{}.Normalize(), cfg)
}

func TestParseQuery_Errors(t *testing.T) {
	_, err := ParseQuery("", "refunds", "", "")
	assert.ErrorIs(t, err, ErrInvalidTypeFilter)

	_, err = ParseQuery("", "", "anomalyType", "")
	assert.ErrorIs(t, err, ErrInvalidSortField)

	_, err = ParseQuery("", "", "", "up")
	assert.ErrorIs(t, err, ErrInvalidSortDirection)
}

func TestParseInvoiceType(t *testing.T) {
	typ, err := ParseInvoiceType("purchase")
	require.NoError(t, err)
	assert.Equal(t, models.Purchase, typ)

	_, err = ParseInvoiceType("all")
	assert.ErrorIs(t, err, ErrInvalidInvoiceType)
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("Report")
	require.NoError(t, err)
	assert.Equal(t, models.ActionReport, a)

	_, err = ParseAction("delete")
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestCatalog_IsCopy(t *testing.T) {
	c := Catalog()
	c[0].Vendor = "changed"
	assert.Equal(t, "Reliance Industries", Catalog()[0].Vendor)
}

func TestFindByID(t *testing.T) {
	inv, ok := FindByID(Catalog(), "INV-007")
	require.True(t, ok)
	assert.Equal(t, "Bajaj Finance", inv.Vendor)

	_, ok = FindByID(Catalog(), "INV-999")
	assert.False(t, ok)
}

func TestFormatLakh(t *testing.T) {
	assert.Equal(t, "35.5L", FormatLakh(3545000))
	assert.Equal(t, "13.0L", FormatLakh(1299000))
	assert.Equal(t, "0.0L", FormatLakh(0))
}

func TestFormatRupees(t *testing.T) {
	got := FormatRupees(1120000)
	assert.True(t, strings.HasPrefix(got, "₹"))
	assert.Equal(t, "₹1120000", strings.ReplaceAll(got, ",", ""))
}
