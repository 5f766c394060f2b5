package refdata

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// maxPortResults caps the port search result size.
const maxPortResults = 50

var foldCaser = cases.Fold()

// Catalog is an immutable in-memory set of lookup tables. All methods
// are safe for concurrent use because the slices are never mutated
// after construction.
type Catalog struct {
	countries      []Country
	salesOffices   []SalesOffice
	salesPics      []SalesPic
	ports          []Port
	containerTypes []ContainerType
	cnOffices      []CnOffice
	cargoTypes     []CargoType
	products       []Product
	uoms           []Uom
	categories     []Category
}

// NewCatalog builds a catalog from the given tables.
func NewCatalog(
	countries []Country,
	salesOffices []SalesOffice,
	salesPics []SalesPic,
	ports []Port,
	containerTypes []ContainerType,
	cnOffices []CnOffice,
	cargoTypes []CargoType,
	products []Product,
	uoms []Uom,
	categories []Category,
) *Catalog {
	return &Catalog{
		countries:      countries,
		salesOffices:   salesOffices,
		salesPics:      salesPics,
		ports:          ports,
		containerTypes: containerTypes,
		cnOffices:      cnOffices,
		cargoTypes:     cargoTypes,
		products:       products,
		uoms:           uoms,
		categories:     categories,
	}
}

// SalesCountries returns distinct countries that have at least one PIC,
// in first-seen PIC order.
func (c *Catalog) SalesCountries() []SelectOption {
	seen := make(map[string]bool)
	var out []SelectOption
	for _, pic := range c.salesPics {
		if seen[pic.CountryCode] {
			continue
		}
		seen[pic.CountryCode] = true
		label := pic.CountryCode
		if country, ok := c.CountryByCode(pic.CountryCode); ok {
			label = country.CountryNameEn
		}
		out = append(out, SelectOption{Value: pic.CountryCode, Label: label})
	}
	return out
}

// CountryByCode looks up a country by its code.
func (c *Catalog) CountryByCode(code string) (Country, bool) {
	for _, country := range c.countries {
		if country.CountryCode == code {
			return country, true
		}
	}
	return Country{}, false
}

// SalesPicsByCountry returns active PICs for a sales country.
func (c *Catalog) SalesPicsByCountry(countryCode string) []SalesPicOption {
	var out []SalesPicOption
	for _, pic := range c.salesPics {
		if pic.CountryCode != countryCode || !pic.IsActive {
			continue
		}
		out = append(out, SalesPicOption{
			Value:       pic.ID,
			Label:       pic.Name,
			CountryCode: pic.CountryCode,
			OfficeID:    pic.SalesOfficeID,
			OfficeName:  pic.SalesOfficeName,
			OfficeCode:  pic.SalesOfficeCode,
		})
	}
	return out
}

// SalesPicByID looks up a PIC by ID.
func (c *Catalog) SalesPicByID(id int64) (SalesPic, bool) {
	for _, pic := range c.salesPics {
		if pic.ID == id {
			return pic, true
		}
	}
	return SalesPic{}, false
}

// SalesOfficeByID looks up a sales office by ID.
func (c *Catalog) SalesOfficeByID(id int64) (SalesOffice, bool) {
	for _, office := range c.salesOffices {
		if office.ID == id {
			return office, true
		}
	}
	return SalesOffice{}, false
}

// SearchPorts returns active ports of the given type matching keyword.
// Keywords shorter than two runes match everything. Matching is
// case-insensitive over port code, name and city, capped at 50 rows.
func (c *Catalog) SearchPorts(portType PortType, keyword string) []PortOption {
	kw := foldCaser.String(keyword)
	loose := len([]rune(keyword)) < 2
	var out []PortOption
	for _, p := range c.ports {
		if p.PortType != portType || !p.IsActive {
			continue
		}
		if !loose &&
			!strings.Contains(foldCaser.String(p.PortCode), kw) &&
			!strings.Contains(foldCaser.String(p.PortName), kw) &&
			!strings.Contains(foldCaser.String(p.City), kw) {
			continue
		}
		label := fmt.Sprintf("[%s] %s", p.PortCode, p.PortName)
		if p.CountryCode != "" {
			label += ", " + p.CountryCode
		}
		out = append(out, PortOption{
			Value:       p.ID,
			Label:       label,
			PortCode:    p.PortCode,
			PortType:    p.PortType,
			CountryCode: p.CountryCode,
		})
		if len(out) == maxPortResults {
			break
		}
	}
	return out
}

// PortByID looks up a port by ID.
func (c *Catalog) PortByID(id int64) (Port, bool) {
	for _, p := range c.ports {
		if p.ID == id {
			return p, true
		}
	}
	return Port{}, false
}

// ContainerTypes returns active container types as dropdown options.
func (c *Catalog) ContainerTypes() []ContainerTypeOption {
	var out []ContainerTypeOption
	for _, ct := range c.containerTypes {
		if !ct.IsActive {
			continue
		}
		out = append(out, ContainerTypeOption{
			Value:     ct.ID,
			Label:     ct.ContainerCode + " - " + ct.ContainerName,
			TeuValue:  ct.TeuValue,
			IsSpecial: ct.IsSpecial,
		})
	}
	return out
}

// ContainerTypeByID looks up a container type by ID.
func (c *Catalog) ContainerTypeByID(id int64) (ContainerType, bool) {
	for _, ct := range c.containerTypes {
		if ct.ID == id {
			return ct, true
		}
	}
	return ContainerType{}, false
}

// CnOffices returns active CN offices as dropdown options.
func (c *Catalog) CnOffices() []SelectOption {
	var out []SelectOption
	for _, o := range c.cnOffices {
		if !o.IsActive {
			continue
		}
		out = append(out, SelectOption{Value: o.Code, Label: o.Name})
	}
	return out
}

// CargoTypes returns active cargo types.
func (c *Catalog) CargoTypes() []CargoType {
	var out []CargoType
	for _, ct := range c.cargoTypes {
		if ct.IsActive {
			out = append(out, ct)
		}
	}
	return out
}

// CargoTypeByCode looks up a cargo type by code.
func (c *Catalog) CargoTypeByCode(code string) (CargoType, bool) {
	for _, ct := range c.cargoTypes {
		if ct.Code == code {
			return ct, true
		}
	}
	return CargoType{}, false
}

// Products returns active products.
func (c *Catalog) Products() []Product {
	var out []Product
	for _, p := range c.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

// ProductByCode looks up a product by code.
func (c *Catalog) ProductByCode(code string) (Product, bool) {
	for _, p := range c.products {
		if p.Code == code {
			return p, true
		}
	}
	return Product{}, false
}

// Uoms returns active units of measure as dropdown options.
func (c *Catalog) Uoms() []SelectOption {
	var out []SelectOption
	for _, u := range c.uoms {
		if !u.IsActive {
			continue
		}
		out = append(out, SelectOption{Value: u.Code, Label: u.Name})
	}
	return out
}

// Categories returns active categories as dropdown options.
func (c *Catalog) Categories() []SelectOption {
	var out []SelectOption
	for _, cat := range c.categories {
		if !cat.IsActive {
			continue
		}
		out = append(out, SelectOption{Value: cat.Code, Label: cat.Name})
	}
	return out
}
