package enquiry

import (
	"strings"
	"time"
)

// Status is the quote workflow state of an enquiry.
type Status string

const (
	StatusNew     Status = "New"
	StatusQuoted  Status = "Quoted"
	StatusPending Status = "Pending"
)

// BookingStatus records the booking outcome of an enquiry.
type BookingStatus string

const (
	BookingYes      BookingStatus = "Yes"
	BookingRejected BookingStatus = "Rejected"
	BookingPending  BookingStatus = "Pending"
)

// CoreStatus classifies strategic versus opportunistic business.
type CoreStatus string

const (
	CoreFlagCore    CoreStatus = "CORE"
	CoreFlagNonCore CoreStatus = "NON CORE"
)

// OfferType scopes offers by transport mode.
type OfferType string

const (
	OfferTypeOcean OfferType = "OCEAN"
	OfferTypeAir   OfferType = "AIR"
	OfferTypeOther OfferType = "OTHER"
)

// Date is a calendar date serialized as "2006-01-02" on the wire.
// The zero value marshals to an empty string.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate builds a Date truncated to the day.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a wire date string.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Enquiry is the root business entity: one freight rate request with
// its container breakdown and issued offers.
type Enquiry struct {
	ID              int64  `json:"id"`
	ReferenceNumber string `json:"referenceNumber"`

	EnquiryReceivedDate Date   `json:"enquiryReceivedDate"`
	IssueDate           Date   `json:"issueDate"`
	ReferenceMonth      string `json:"referenceMonth"`
	MonthlySequence     int    `json:"monthlySequence"`

	ProductCode string `json:"productCode"`
	ProductAbbr string `json:"productAbbr"`
	Status      Status `json:"status"`

	CnPricingAdmin       string `json:"cnPricingAdmin"`
	SalesCountryCode     string `json:"salesCountryCode"`
	SalesOfficeID        int64  `json:"salesOfficeId,omitempty"`
	SalesOfficeName      string `json:"salesOfficeName,omitempty"`
	SalesOfficeCode      string `json:"salesOfficeCode,omitempty"`
	SalesPicID           int64  `json:"salesPicId,omitempty"`
	SalesPicName         string `json:"salesPicName,omitempty"`
	AssignedCnOfficeCode string `json:"assignedCnOfficeCode,omitempty"`

	CargoTypeCode         string   `json:"cargoTypeCode"`
	VolumeCbm             *float64 `json:"volumeCbm,omitempty"`
	Quantity              *float64 `json:"quantity,omitempty"`
	QuantityUomCode       string   `json:"quantityUomCode,omitempty"`
	QuantityTeu           float64  `json:"quantityTeu"`
	Commodity             string   `json:"commodity,omitempty"`
	HazSpecialEquipment   string   `json:"hazSpecialEquipment,omitempty"`
	AdditionalRequirement string   `json:"additionalRequirement,omitempty"`

	PolID          int64  `json:"polId,omitempty"`
	PolCode        string `json:"polCode,omitempty"`
	PolName        string `json:"polName,omitempty"`
	PodID          int64  `json:"podId,omitempty"`
	PodCode        string `json:"podCode,omitempty"`
	PodName        string `json:"podName,omitempty"`
	PodCountryCode string `json:"podCountryCode,omitempty"`
	PodCountryName string `json:"podCountryName,omitempty"`

	CoreFlag         CoreStatus    `json:"coreFlag,omitempty"`
	CategoryCode     string        `json:"categoryCode,omitempty"`
	CargoReadyDate   string        `json:"cargoReadyDate,omitempty"`
	BookingConfirmed BookingStatus `json:"bookingConfirmed"`

	Remark         string `json:"remark,omitempty"`
	RejectedReason string `json:"rejectedReason,omitempty"`
	ActualReason   string `json:"actualReason,omitempty"`

	ContainerLines []ContainerLine `json:"containerLines,omitempty"`
	Offers         []Offer         `json:"offers,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// LatestOffer returns the latest offer of any type with the most
// recent sent date, or nil when no offer is flagged latest.
func (e *Enquiry) LatestOffer() *Offer {
	var latest *Offer
	for i := range e.Offers {
		o := &e.Offers[i]
		if !o.IsLatest {
			continue
		}
		if latest == nil || o.SentDate.After(latest.SentDate.Time) {
			latest = o
		}
	}
	return latest
}

// ContainerLine is one container-type x quantity row of an enquiry.
type ContainerLine struct {
	ID              int64   `json:"id,omitempty"`
	EnquiryID       int64   `json:"enquiryId,omitempty"`
	ContainerTypeID int64   `json:"containerTypeId"`
	ContainerCode   string  `json:"containerCode,omitempty"`
	Quantity        int     `json:"quantity"`
	TeuValue        float64 `json:"teuValue"`
	LineTeu         float64 `json:"lineTeu"`
}

// Offer is one price quotation issued against an enquiry.
type Offer struct {
	ID              int64     `json:"id"`
	EnquiryID       int64     `json:"enquiryId"`
	OfferType       OfferType `json:"offerType"`
	SequenceNo      int       `json:"sequenceNo"`
	IsLatest        bool      `json:"isLatest"`
	SentDate        Date      `json:"sentDate"`
	Price           *float64  `json:"price,omitempty"`
	PriceText       string    `json:"priceText,omitempty"`
	IsRejectedPrice bool      `json:"isRejectedPrice"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt,omitempty"`
}
