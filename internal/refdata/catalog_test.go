package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesCountriesAreDistinct(t *testing.T) {
	catalog := DefaultCatalog()

	countries := catalog.SalesCountries()

	require.Len(t, countries, 4)
	assert.Equal(t, "FR", countries[0].Value)
	assert.Equal(t, "FRANCE", countries[0].Label)
	assert.Equal(t, "AGENTS", countries[3].Value)
}

func TestSalesPicsByCountryFiltersAndDenormalizes(t *testing.T) {
	catalog := DefaultCatalog()

	pics := catalog.SalesPicsByCountry("UK")

	require.Len(t, pics, 2)
	assert.Equal(t, "JOHN SMITH", pics[0].Label)
	assert.Equal(t, "ZIEGLER UK", pics[0].OfficeName)
	assert.Equal(t, "UK-ZU", pics[0].OfficeCode)
}

func TestSearchPortsShortKeywordMatchesAll(t *testing.T) {
	catalog := DefaultCatalog()

	ports := catalog.SearchPorts(PortTypeSea, "")

	require.Len(t, ports, 9)
}

func TestSearchPortsMatchesCodeNameAndCity(t *testing.T) {
	catalog := DefaultCatalog()

	byCode := catalog.SearchPorts(PortTypeSea, "cnsha")
	require.Len(t, byCode, 1)
	assert.Equal(t, "[CNSHA] Shanghai, CN", byCode[0].Label)

	byName := catalog.SearchPorts(PortTypeAir, "heathrow")
	require.Len(t, byName, 1)
	assert.Equal(t, "LHR", byName[0].PortCode)

	byCity := catalog.SearchPorts(PortTypeSea, "hong kong")
	require.Len(t, byCity, 1)
	assert.Equal(t, "HKHKG", byCity[0].PortCode)
}

func TestSearchPortsRespectsType(t *testing.T) {
	catalog := DefaultCatalog()

	ports := catalog.SearchPorts(PortTypeAir, "shanghai")

	require.Len(t, ports, 1)
	assert.Equal(t, "PVG", ports[0].PortCode)
}

func TestContainerTypeTeuValues(t *testing.T) {
	catalog := DefaultCatalog()

	hq40, ok := catalog.ContainerTypeByID(3)
	require.True(t, ok)
	assert.Equal(t, "40HQ", hq40.ContainerCode)
	assert.Equal(t, 2.0, hq40.TeuValue)

	hq45, ok := catalog.ContainerTypeByID(5)
	require.True(t, ok)
	assert.Equal(t, 2.25, hq45.TeuValue)
}

func TestProductAbbreviations(t *testing.T) {
	catalog := DefaultCatalog()

	cases := map[string]string{
		"AIR":      "A",
		"SEA":      "S",
		"SEA-AIR":  "SA",
		"RAIL":     "R",
		"RAIL-SEA": "RS",
	}
	for code, abbr := range cases {
		product, ok := catalog.ProductByCode(code)
		require.True(t, ok, "product %s", code)
		assert.Equal(t, abbr, product.Abbr)
	}
}

func TestLookupMissEntries(t *testing.T) {
	catalog := DefaultCatalog()

	_, ok := catalog.PortByID(999)
	assert.False(t, ok)
	_, ok = catalog.SalesPicByID(999)
	assert.False(t, ok)
	_, ok = catalog.ProductByCode("TRUCK")
	assert.False(t, ok)
}
