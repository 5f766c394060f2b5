package refdata

// DefaultCatalog returns the built-in lookup tables. These mirror the
// operational master data loaded by the pricing team.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		defaultCountries(),
		defaultSalesOffices(),
		defaultSalesPics(),
		defaultPorts(),
		defaultContainerTypes(),
		defaultCnOffices(),
		defaultCargoTypes(),
		defaultProducts(),
		defaultUoms(),
		defaultCategories(),
	)
}

func defaultCountries() []Country {
	return []Country{
		{ID: 1, CountryCode: "FR", CountryNameEn: "FRANCE", CountryNameCn: "法国", IsActive: true},
		{ID: 2, CountryCode: "UK", CountryNameEn: "UNITED KINGDOM", CountryNameCn: "英国", IsActive: true},
		{ID: 3, CountryCode: "DE", CountryNameEn: "GERMANY", CountryNameCn: "德国", IsActive: true},
		{ID: 4, CountryCode: "BE", CountryNameEn: "BELGIUM", CountryNameCn: "比利时", IsActive: true},
		{ID: 5, CountryCode: "NL", CountryNameEn: "NETHERLANDS", CountryNameCn: "荷兰", IsActive: true},
		{ID: 6, CountryCode: "CN", CountryNameEn: "CHINA", CountryNameCn: "中国", IsActive: true},
		{ID: 7, CountryCode: "AGENTS", CountryNameEn: "AGENTS", IsActive: true},
	}
}

func defaultSalesOffices() []SalesOffice {
	return []SalesOffice{
		{ID: 1, Code: "FR-ZF", Name: "ZIEGLER FRANCE", CountryCode: "FR", IsActive: true},
		{ID: 2, Code: "UK-ZU", Name: "ZIEGLER UK", CountryCode: "UK", IsActive: true},
		{ID: 3, Code: "DE-ZD", Name: "ZIEGLER GERMANY", CountryCode: "DE", IsActive: true},
		{ID: 4, Code: "BE-ZB", Name: "ZIEGLER BELGIUM", CountryCode: "BE", IsActive: true},
		{ID: 5, Code: "NL-ZN", Name: "ZIEGLER NETHERLANDS", CountryCode: "NL", IsActive: true},
		{ID: 6, Code: "AG-AFS", Name: "AGENTS FORWARDING", CountryCode: "AGENTS", IsActive: true},
	}
}

func defaultSalesPics() []SalesPic {
	return []SalesPic{
		{ID: 1, Name: "JEAN DUPONT", CountryCode: "FR", SalesOfficeID: 1, SalesOfficeName: "ZIEGLER FRANCE", SalesOfficeCode: "FR-ZF", IsActive: true},
		{ID: 2, Name: "MARIE MARTIN", CountryCode: "FR", SalesOfficeID: 1, SalesOfficeName: "ZIEGLER FRANCE", SalesOfficeCode: "FR-ZF", IsActive: true},
		{ID: 3, Name: "JOHN SMITH", CountryCode: "UK", SalesOfficeID: 2, SalesOfficeName: "ZIEGLER UK", SalesOfficeCode: "UK-ZU", IsActive: true},
		{ID: 4, Name: "JAMES BROWN", CountryCode: "UK", SalesOfficeID: 2, SalesOfficeName: "ZIEGLER UK", SalesOfficeCode: "UK-ZU", IsActive: true},
		{ID: 5, Name: "HANS MUELLER", CountryCode: "DE", SalesOfficeID: 3, SalesOfficeName: "ZIEGLER GERMANY", SalesOfficeCode: "DE-ZD", IsActive: true},
		{ID: 6, Name: "AGENT SMITH", CountryCode: "AGENTS", SalesOfficeID: 6, SalesOfficeName: "AGENTS FORWARDING", SalesOfficeCode: "AG-AFS", IsActive: true},
	}
}

func defaultPorts() []Port {
	return []Port{
		{ID: 1, PortCode: "CNSHA", PortName: "Shanghai", PortType: PortTypeSea, CountryCode: "CN", City: "Shanghai", IsActive: true},
		{ID: 2, PortCode: "CNSZX", PortName: "Shenzhen", PortType: PortTypeSea, CountryCode: "CN", City: "Shenzhen", IsActive: true},
		{ID: 3, PortCode: "CNNBO", PortName: "Ningbo", PortType: PortTypeSea, CountryCode: "CN", City: "Ningbo", IsActive: true},
		{ID: 4, PortCode: "HKHKG", PortName: "Hong Kong", PortType: PortTypeSea, CountryCode: "CN", City: "Hong Kong", IsActive: true},
		{ID: 5, PortCode: "FRLEH", PortName: "Le Havre", PortType: PortTypeSea, CountryCode: "FR", City: "Le Havre", IsActive: true},
		{ID: 6, PortCode: "GBFXT", PortName: "Felixstowe", PortType: PortTypeSea, CountryCode: "UK", City: "Felixstowe", IsActive: true},
		{ID: 7, PortCode: "DEHAM", PortName: "Hamburg", PortType: PortTypeSea, CountryCode: "DE", City: "Hamburg", IsActive: true},
		{ID: 8, PortCode: "NLRTM", PortName: "Rotterdam", PortType: PortTypeSea, CountryCode: "NL", City: "Rotterdam", IsActive: true},
		{ID: 9, PortCode: "BEANR", PortName: "Antwerp", PortType: PortTypeSea, CountryCode: "BE", City: "Antwerp", IsActive: true},
		{ID: 101, PortCode: "PVG", PortName: "Shanghai Pudong International", PortType: PortTypeAir, CountryCode: "CN", City: "Shanghai", IsActive: true},
		{ID: 102, PortCode: "HKG", PortName: "Hong Kong International", PortType: PortTypeAir, CountryCode: "CN", City: "Hong Kong", IsActive: true},
		{ID: 103, PortCode: "CDG", PortName: "Paris Charles de Gaulle", PortType: PortTypeAir, CountryCode: "FR", City: "Paris", IsActive: true},
		{ID: 104, PortCode: "LHR", PortName: "London Heathrow", PortType: PortTypeAir, CountryCode: "UK", City: "London", IsActive: true},
		{ID: 105, PortCode: "FRA", PortName: "Frankfurt Airport", PortType: PortTypeAir, CountryCode: "DE", City: "Frankfurt", IsActive: true},
		{ID: 106, PortCode: "AMS", PortName: "Amsterdam Schiphol", PortType: PortTypeAir, CountryCode: "NL", City: "Amsterdam", IsActive: true},
	}
}

func defaultContainerTypes() []ContainerType {
	return []ContainerType{
		{ID: 1, ContainerCode: "20GP", ContainerName: "20' General Purpose", TeuValue: 1.00, LengthFeet: 20, IsActive: true},
		{ID: 2, ContainerCode: "40GP", ContainerName: "40' General Purpose", TeuValue: 2.00, LengthFeet: 40, IsActive: true},
		{ID: 3, ContainerCode: "40HQ", ContainerName: "40' High Cube", TeuValue: 2.00, LengthFeet: 40, IsActive: true},
		{ID: 4, ContainerCode: "40HC", ContainerName: "40' High Cube", TeuValue: 2.00, LengthFeet: 40, IsActive: true},
		{ID: 5, ContainerCode: "45HQ", ContainerName: "45' High Cube", TeuValue: 2.25, LengthFeet: 45, IsActive: true},
		{ID: 6, ContainerCode: "20RF", ContainerName: "20' Reefer", TeuValue: 1.00, LengthFeet: 20, IsSpecial: true, IsActive: true},
		{ID: 7, ContainerCode: "40RF", ContainerName: "40' Reefer", TeuValue: 2.00, LengthFeet: 40, IsSpecial: true, IsActive: true},
		{ID: 8, ContainerCode: "20OT", ContainerName: "20' Open Top", TeuValue: 1.00, LengthFeet: 20, IsSpecial: true, IsActive: true},
		{ID: 9, ContainerCode: "40OT", ContainerName: "40' Open Top", TeuValue: 2.00, LengthFeet: 40, IsSpecial: true, IsActive: true},
		{ID: 10, ContainerCode: "20FR", ContainerName: "20' Flat Rack", TeuValue: 1.00, LengthFeet: 20, IsSpecial: true, IsActive: true},
		{ID: 11, ContainerCode: "40FR", ContainerName: "40' Flat Rack", TeuValue: 2.00, LengthFeet: 40, IsSpecial: true, IsActive: true},
	}
}

func defaultCnOffices() []CnOffice {
	return []CnOffice{
		{Code: "SHANGHAI", Name: "Shanghai", IsActive: true},
		{Code: "SHENZHEN", Name: "Shenzhen", IsActive: true},
		{Code: "NINGBO", Name: "Ningbo", IsActive: true},
		{Code: "HONG KONG", Name: "Hong Kong", IsActive: true},
		{Code: "TIANJIN", Name: "Tianjin", IsActive: true},
		{Code: "QINGDAO", Name: "Qingdao", IsActive: true},
		{Code: "XIAMEN", Name: "Xiamen", IsActive: true},
		{Code: "CN-MULTI", Name: "CN-Multi", IsActive: true},
	}
}

func defaultCargoTypes() []CargoType {
	return []CargoType{
		{Code: "AIR", Name: "Air Freight", OfferType: "AIR", IsActive: true},
		{Code: "FCL", Name: "Full Container Load", OfferType: "OCEAN", IsActive: true},
		{Code: "LCL", Name: "Less than Container Load", OfferType: "OCEAN", IsActive: true},
		{Code: "RAIL", Name: "Rail Freight", OfferType: "OTHER", IsActive: true},
		{Code: "SEA", Name: "Sea Freight", OfferType: "OCEAN", IsActive: true},
	}
}

func defaultProducts() []Product {
	return []Product{
		{Code: "AIR", Name: "Air Freight", Abbr: "A", IsActive: true},
		{Code: "SEA", Name: "Sea Freight", Abbr: "S", IsActive: true},
		{Code: "SEA-AIR", Name: "Sea-Air Combined", Abbr: "SA", IsActive: true},
		{Code: "RAIL", Name: "Rail Freight", Abbr: "R", IsActive: true},
		{Code: "RAIL-SEA", Name: "Rail-Sea Combined", Abbr: "RS", IsActive: true},
	}
}

func defaultUoms() []Uom {
	return []Uom{
		{Code: "KG", Name: "Kilogram", IsActive: true},
		{Code: "PCS", Name: "Pieces", IsActive: true},
		{Code: "CTN", Name: "Cartons", IsActive: true},
		{Code: "PLT", Name: "Pallets", IsActive: true},
		{Code: "SET", Name: "Sets", IsActive: true},
	}
}

func defaultCategories() []Category {
	return []Category{
		{Code: "ORIGIN_CHARGES_EXW", Name: "Origin Charges & EXW", IsActive: true},
		{Code: "OCEAN_FREIGHT", Name: "Ocean Freight", IsActive: true},
		{Code: "AIR_FREIGHT", Name: "Air Freight", IsActive: true},
		{Code: "AIR_FREIGHT_ORIGIN", Name: "Air Freight + Origin Charge & EXW", IsActive: true},
		{Code: "OCEAN_FREIGHT_ORIGIN", Name: "Ocean Freight + Origin Charges & EXW", IsActive: true},
		{Code: "LCL", Name: "LCL", IsActive: true},
		{Code: "DEST_CHARGES", Name: "Dest. Charges", IsActive: true},
	}
}
