package refdata

// PortType distinguishes seaports from airports.
type PortType string

const (
	PortTypeSea PortType = "SEA"
	PortTypeAir PortType = "AIR"
)

// Country is a sales country entry.
type Country struct {
	ID            int64  `json:"id"`
	CountryCode   string `json:"countryCode"`
	CountryNameEn string `json:"countryNameEn"`
	CountryNameCn string `json:"countryNameCn,omitempty"`
	IsActive      bool   `json:"isActive"`
}

// SalesOffice is an overseas sales office.
type SalesOffice struct {
	ID          int64  `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	IsActive    bool   `json:"isActive"`
}

// SalesPic is a sales person in charge, linked to an office.
type SalesPic struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	CountryCode     string `json:"countryCode"`
	SalesOfficeID   int64  `json:"salesOfficeId"`
	SalesOfficeName string `json:"salesOfficeName,omitempty"`
	SalesOfficeCode string `json:"salesOfficeCode,omitempty"`
	IsActive        bool   `json:"isActive"`
}

// Port is a seaport or airport.
type Port struct {
	ID          int64    `json:"id"`
	PortCode    string   `json:"portCode"`
	PortName    string   `json:"portName"`
	PortType    PortType `json:"portType"`
	CountryCode string   `json:"countryCode,omitempty"`
	City        string   `json:"city,omitempty"`
	IsActive    bool     `json:"isActive"`
}

// ContainerType holds the TEU conversion factor for a container code.
type ContainerType struct {
	ID            int64   `json:"id"`
	ContainerCode string  `json:"containerCode"`
	ContainerName string  `json:"containerName"`
	TeuValue      float64 `json:"teuValue"`
	LengthFeet    int     `json:"lengthFeet"`
	IsSpecial     bool    `json:"isSpecial"`
	IsActive      bool    `json:"isActive"`
}

// CnOffice is a China-side operational office.
type CnOffice struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// CargoType maps a cargo code to the offer type it produces.
type CargoType struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	OfferType string `json:"offerType"`
	IsActive  bool   `json:"isActive"`
}

// Product maps a product code to its reference-number abbreviation.
type Product struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Abbr     string `json:"abbr"`
	IsActive bool   `json:"isActive"`
}

// Uom is a unit of measure.
type Uom struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// Category is a quote category.
type Category struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// SelectOption is a generic value/label pair for dropdowns.
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PortOption is a port dropdown entry.
type PortOption struct {
	Value       int64    `json:"value"`
	Label       string   `json:"label"`
	PortCode    string   `json:"portCode"`
	PortType    PortType `json:"portType"`
	CountryCode string   `json:"countryCode,omitempty"`
}

// SalesPicOption is a PIC dropdown entry carrying office denormalization.
type SalesPicOption struct {
	Value       int64  `json:"value"`
	Label       string `json:"label"`
	CountryCode string `json:"countryCode"`
	OfficeID    int64  `json:"officeId"`
	OfficeName  string `json:"officeName"`
	OfficeCode  string `json:"officeCode"`
}

// ContainerTypeOption is a container type dropdown entry.
type ContainerTypeOption struct {
	Value     int64   `json:"value"`
	Label     string  `json:"label"`
	TeuValue  float64 `json:"teuValue"`
	IsSpecial bool    `json:"isSpecial"`
}
