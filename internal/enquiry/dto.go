package enquiry

// ContainerLineInput is one submitted container row. TeuValue is
// always re-resolved from the catalog, never trusted from the client.
type ContainerLineInput struct {
	ContainerTypeID int64 `json:"containerTypeId" validate:"required,gt=0"`
	Quantity        int   `json:"quantity" validate:"required,gte=1"`
}

// CreateEnquiryRequest carries the form data for a new enquiry.
type CreateEnquiryRequest struct {
	EnquiryReceivedDate Date   `json:"enquiryReceivedDate" validate:"required"`
	IssueDate           Date   `json:"issueDate"`
	ProductCode         string `json:"productCode" validate:"required"`
	Status              Status `json:"status" validate:"omitempty,oneof=New Quoted Pending"`

	CnPricingAdmin       string `json:"cnPricingAdmin"`
	SalesCountryCode     string `json:"salesCountryCode" validate:"required"`
	SalesPicID           int64  `json:"salesPicId,omitempty"`
	AssignedCnOfficeCode string `json:"assignedCnOfficeCode,omitempty"`

	CargoTypeCode         string   `json:"cargoTypeCode" validate:"required"`
	VolumeCbm             *float64 `json:"volumeCbm,omitempty" validate:"omitempty,gte=0"`
	Quantity              *float64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	QuantityUomCode       string   `json:"quantityUomCode,omitempty"`
	Commodity             string   `json:"commodity,omitempty"`
	HazSpecialEquipment   string   `json:"hazSpecialEquipment,omitempty"`
	AdditionalRequirement string   `json:"additionalRequirement,omitempty"`

	PolID int64 `json:"polId,omitempty"`
	PodID int64 `json:"podId,omitempty"`

	CoreFlag         CoreStatus    `json:"coreFlag,omitempty"`
	CategoryCode     string        `json:"categoryCode,omitempty"`
	CargoReadyDate   string        `json:"cargoReadyDate,omitempty"`
	BookingConfirmed BookingStatus `json:"bookingConfirmed" validate:"omitempty,oneof=Yes Rejected Pending"`

	Remark         string `json:"remark,omitempty"`
	RejectedReason string `json:"rejectedReason,omitempty"`
	ActualReason   string `json:"actualReason,omitempty"`

	ContainerLines []ContainerLineInput `json:"containerLines,omitempty" validate:"omitempty,dive"`
}

// UpdateEnquiryRequest merges onto an existing enquiry. Nil pointers
// mean "leave unchanged". The reference number can never be touched.
type UpdateEnquiryRequest struct {
	EnquiryReceivedDate *Date   `json:"enquiryReceivedDate,omitempty"`
	IssueDate           *Date   `json:"issueDate,omitempty"`
	Status              *Status `json:"status,omitempty" validate:"omitempty,oneof=New Quoted Pending"`

	CnPricingAdmin       *string `json:"cnPricingAdmin,omitempty"`
	SalesCountryCode     *string `json:"salesCountryCode,omitempty"`
	SalesPicID           *int64  `json:"salesPicId,omitempty"`
	AssignedCnOfficeCode *string `json:"assignedCnOfficeCode,omitempty"`

	CargoTypeCode         *string  `json:"cargoTypeCode,omitempty"`
	VolumeCbm             *float64 `json:"volumeCbm,omitempty" validate:"omitempty,gte=0"`
	Quantity              *float64 `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	QuantityUomCode       *string  `json:"quantityUomCode,omitempty"`
	Commodity             *string  `json:"commodity,omitempty"`
	HazSpecialEquipment   *string  `json:"hazSpecialEquipment,omitempty"`
	AdditionalRequirement *string  `json:"additionalRequirement,omitempty"`

	PolID *int64 `json:"polId,omitempty"`
	PodID *int64 `json:"podId,omitempty"`

	CoreFlag         *CoreStatus    `json:"coreFlag,omitempty"`
	CategoryCode     *string        `json:"categoryCode,omitempty"`
	CargoReadyDate   *string        `json:"cargoReadyDate,omitempty"`
	BookingConfirmed *BookingStatus `json:"bookingConfirmed,omitempty" validate:"omitempty,oneof=Yes Rejected Pending"`

	Remark         *string `json:"remark,omitempty"`
	RejectedReason *string `json:"rejectedReason,omitempty"`
	ActualReason   *string `json:"actualReason,omitempty"`

	ContainerLines *[]ContainerLineInput `json:"containerLines,omitempty" validate:"omitempty,dive"`
}

// ListEnquiriesRequest holds filter, sort and page parameters.
type ListEnquiriesRequest struct {
	Keyword           string   `json:"keyword,omitempty"`
	Statuses          []Status `json:"statuses,omitempty"`
	CargoTypes        []string `json:"cargoTypes,omitempty"`
	SalesCountryCodes []string `json:"salesCountryCodes,omitempty"`
	DateFrom          Date     `json:"dateFrom,omitempty"`
	DateTo            Date     `json:"dateTo,omitempty"`
	SortDir           string   `json:"sortDir,omitempty" validate:"omitempty,oneof=asc desc"`
	PageIndex         int      `json:"pageIndex" validate:"gte=0"`
	PageSize          int      `json:"pageSize" validate:"gte=0,lte=1000"`
}

// EnquiryListItem is the projection served by list queries. Container
// lines and full offers are omitted; only the latest-offer summary and
// the offer count survive.
type EnquiryListItem struct {
	ID                  int64         `json:"id"`
	ReferenceNumber     string        `json:"referenceNumber"`
	EnquiryReceivedDate Date          `json:"enquiryReceivedDate"`
	IssueDate           Date          `json:"issueDate"`
	Status              Status        `json:"status"`
	ProductAbbr         string        `json:"productAbbr,omitempty"`
	SalesCountryCode    string        `json:"salesCountryCode"`
	SalesOfficeName     string        `json:"salesOfficeName,omitempty"`
	SalesPicName        string        `json:"salesPicName,omitempty"`
	CargoTypeCode       string        `json:"cargoTypeCode"`
	PolName             string        `json:"polName,omitempty"`
	PodName             string        `json:"podName,omitempty"`
	PodCountryName      string        `json:"podCountryName,omitempty"`
	QuantityTeu         float64       `json:"quantityTeu"`
	BookingConfirmed    BookingStatus `json:"bookingConfirmed"`
	LatestOfferDate     Date          `json:"latestOfferDate,omitempty"`
	LatestOfferPrice    string        `json:"latestOfferPrice,omitempty"`
	OfferCount          int           `json:"offerCount"`
}

// EnquiryPage is the list envelope.
type EnquiryPage struct {
	Items      []EnquiryListItem `json:"items"`
	TotalCount int               `json:"totalCount"`
	TotalPages int               `json:"totalPages"`
	PageIndex  int               `json:"pageIndex"`
	PageSize   int               `json:"pageSize"`
}

// CreateOfferRequest carries the form data for a new offer.
type CreateOfferRequest struct {
	OfferType OfferType `json:"offerType" validate:"required,oneof=OCEAN AIR OTHER"`
	SentDate  Date      `json:"sentDate"`
	Price     *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	PriceText string    `json:"priceText,omitempty"`
}

// UpdateOfferRequest merges onto an existing offer.
type UpdateOfferRequest struct {
	SentDate        *Date    `json:"sentDate,omitempty"`
	Price           *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	PriceText       *string  `json:"priceText,omitempty"`
	IsLatest        *bool    `json:"isLatest,omitempty"`
	IsRejectedPrice *bool    `json:"isRejectedPrice,omitempty"`
}
