package enquiry

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logitrack/logitrack/internal/refdata"
	"github.com/logitrack/logitrack/internal/shared"
)

func TestComputeTeuTotal(t *testing.T) {
	assert.Zero(t, ComputeTeuTotal(nil))

	lines := []ContainerLine{
		{ContainerTypeID: 3, Quantity: 2, TeuValue: 2.0},
		{ContainerTypeID: 1, Quantity: 3, TeuValue: 1.0},
	}
	assert.InDelta(t, 7.0, ComputeTeuTotal(lines), 1e-9)
}

func TestResolveContainerLineFillsCatalogValues(t *testing.T) {
	catalog := refdata.DefaultCatalog()

	line, err := ResolveContainerLine(ContainerLine{ContainerTypeID: 3, Quantity: 2, TeuValue: 99}, catalog)

	require.NoError(t, err)
	assert.Equal(t, "40HQ", line.ContainerCode)
	assert.InDelta(t, 2.0, line.TeuValue, 1e-9)
	assert.InDelta(t, 4.0, line.LineTeu, 1e-9)
}

func TestResolveContainerLineUnknownType(t *testing.T) {
	catalog := refdata.DefaultCatalog()

	_, err := ResolveContainerLine(ContainerLine{ContainerTypeID: 999, Quantity: 1}, catalog)

	require.ErrorIs(t, err, shared.ErrReferenceNotFound)
}

func TestGenerateReferenceNumber(t *testing.T) {
	catalog := refdata.DefaultCatalog()
	issueDate := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	refNumber, refMonth, abbr, seq, err := GenerateReferenceNumber(issueDate, "SEA", 0, catalog, false)

	require.NoError(t, err)
	assert.Equal(t, "CN2601001-S", refNumber)
	assert.Equal(t, "2601", refMonth)
	assert.Equal(t, "S", abbr)
	assert.Equal(t, 1, seq)
}

func TestGenerateReferenceNumberSequenceIsCountBased(t *testing.T) {
	catalog := refdata.DefaultCatalog()
	issueDate := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	refNumber, _, _, seq, err := GenerateReferenceNumber(issueDate, "SEA-AIR", 41, catalog, false)

	require.NoError(t, err)
	assert.Equal(t, 42, seq)
	assert.Equal(t, "CN2612042-SA", refNumber)
}

func TestGenerateReferenceNumberUnknownProduct(t *testing.T) {
	catalog := refdata.DefaultCatalog()
	issueDate := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	_, _, _, _, err := GenerateReferenceNumber(issueDate, "TRUCK", 0, catalog, true)
	require.ErrorIs(t, err, shared.ErrReferenceNotFound)

	refNumber, _, abbr, _, err := GenerateReferenceNumber(issueDate, "TRUCK", 0, catalog, false)
	require.NoError(t, err)
	assert.Equal(t, "X", abbr)
	assert.Equal(t, "CN2601001-X", refNumber)
}

func TestGeneratedReferenceNumbersMatchPattern(t *testing.T) {
	catalog := refdata.DefaultCatalog()
	pattern := regexp.MustCompile(`^CN\d{4}\d{3}-[A-Z-]+$`)
	issueDate := time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC)

	for _, code := range []string{"AIR", "SEA", "SEA-AIR", "RAIL", "RAIL-SEA", "UNKNOWN"} {
		refNumber, _, _, _, err := GenerateReferenceNumber(issueDate, code, 7, catalog, false)
		require.NoError(t, err)
		assert.Regexp(t, pattern, refNumber)
	}
}

func TestResolveDenormalizedFields(t *testing.T) {
	catalog := refdata.DefaultCatalog()
	e := &Enquiry{SalesPicID: 1, PolID: 1, PodID: 5}

	ResolveDenormalizedFields(e, catalog)

	assert.Equal(t, "JEAN DUPONT", e.SalesPicName)
	assert.Equal(t, "ZIEGLER FRANCE", e.SalesOfficeName)
	assert.Equal(t, "FR-ZF", e.SalesOfficeCode)
	assert.Equal(t, "CNSHA", e.PolCode)
	assert.Equal(t, "Shanghai", e.PolName)
	assert.Equal(t, "Le Havre", e.PodName)
	assert.Equal(t, "FR", e.PodCountryCode)
	assert.Equal(t, "FRANCE", e.PodCountryName)
}

func TestResolveDenormalizedFieldsClearsStaleNames(t *testing.T) {
	catalog := refdata.DefaultCatalog()
	e := &Enquiry{
		SalesPicID:      999,
		SalesPicName:    "OLD NAME",
		SalesOfficeName: "OLD OFFICE",
		PolID:           999,
		PolName:         "Old Port",
	}

	ResolveDenormalizedFields(e, catalog)

	assert.Empty(t, e.SalesPicName)
	assert.Empty(t, e.SalesOfficeName)
	assert.Empty(t, e.PolName)
}
