package enquiry

import (
	"context"
	"time"
)

// SeedDemoData loads a small set of demo enquiries into an empty
// repository. Inserted oldest first so the head of the list is the
// most recent record.
func SeedDemoData(ctx context.Context, repo Repository) error {
	for i := len(demoEnquiries()) - 1; i >= 0; i-- {
		e := demoEnquiries()[i]
		if err := repo.Insert(ctx, &e); err != nil {
			return err
		}
	}
	return nil
}

func demoEnquiries() []Enquiry {
	created := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	return []Enquiry{
		{
			ID:                   1,
			ReferenceNumber:      "CN2601001-S",
			EnquiryReceivedDate:  mustDate("2026-01-15"),
			IssueDate:            mustDate("2026-01-15"),
			ReferenceMonth:       "2601",
			MonthlySequence:      1,
			ProductCode:          "SEA",
			ProductAbbr:          "S",
			Status:               StatusQuoted,
			CnPricingAdmin:       "Susana Wong",
			SalesCountryCode:     "FR",
			SalesOfficeID:        1,
			SalesOfficeName:      "ZIEGLER FRANCE",
			SalesOfficeCode:      "FR-ZF",
			SalesPicID:           1,
			SalesPicName:         "JEAN DUPONT",
			AssignedCnOfficeCode: "SHANGHAI",
			CargoTypeCode:        "FCL",
			VolumeCbm:            ptr(120.5),
			Quantity:             ptr(2.0),
			QuantityUomCode:      "CTN",
			QuantityTeu:          4.0,
			Commodity:            "Electronics components for automotive industry",
			PolID:                1,
			PolCode:              "CNSHA",
			PolName:              "Shanghai",
			PodID:                5,
			PodCode:              "FRLEH",
			PodName:              "Le Havre",
			PodCountryCode:       "FR",
			PodCountryName:       "FRANCE",
			CoreFlag:             CoreFlagCore,
			CategoryCode:         "OCEAN_FREIGHT",
			CargoReadyDate:       "2026-01-20",
			BookingConfirmed:     BookingPending,
			ContainerLines: []ContainerLine{
				{ID: 1, EnquiryID: 1, ContainerTypeID: 3, ContainerCode: "40HQ", Quantity: 2, TeuValue: 2.0, LineTeu: 4.0},
			},
			Offers: []Offer{
				{ID: 1, EnquiryID: 1, OfferType: OfferTypeOcean, SequenceNo: 1, IsLatest: true, SentDate: mustDate("2026-01-16"), Price: ptr(2500.0), PriceText: "USD 2,500 all-in"},
			},
			CreatedAt: created,
			UpdatedAt: created,
		},
		{
			ID:                   2,
			ReferenceNumber:      "CN2601002-A",
			EnquiryReceivedDate:  mustDate("2026-01-16"),
			IssueDate:            mustDate("2026-01-16"),
			ReferenceMonth:       "2601",
			MonthlySequence:      2,
			ProductCode:          "AIR",
			ProductAbbr:          "A",
			Status:               StatusNew,
			CnPricingAdmin:       "Susana Wong",
			SalesCountryCode:     "UK",
			SalesOfficeID:        2,
			SalesOfficeName:      "ZIEGLER UK",
			SalesOfficeCode:      "UK-ZU",
			SalesPicID:           3,
			SalesPicName:         "JOHN SMITH",
			AssignedCnOfficeCode: "HONG KONG",
			CargoTypeCode:        "AIR",
			VolumeCbm:            ptr(2.5),
			Quantity:             ptr(350.0),
			QuantityUomCode:      "KG",
			Commodity:            "LED lighting fixtures",
			PolID:                102,
			PolCode:              "HKG",
			PolName:              "Hong Kong International",
			PodID:                104,
			PodCode:              "LHR",
			PodName:              "London Heathrow",
			PodCountryCode:       "UK",
			PodCountryName:       "UNITED KINGDOM",
			CoreFlag:             CoreFlagNonCore,
			CategoryCode:         "AIR_FREIGHT_ORIGIN",
			CargoReadyDate:       "2026-01-25",
			BookingConfirmed:     BookingPending,
			CreatedAt:            created.Add(24 * time.Hour),
			UpdatedAt:            created.Add(24 * time.Hour),
		},
		{
			ID:                   3,
			ReferenceNumber:      "CN2601003-S",
			EnquiryReceivedDate:  mustDate("2026-01-17"),
			IssueDate:            mustDate("2026-01-17"),
			ReferenceMonth:       "2601",
			MonthlySequence:      3,
			ProductCode:          "SEA",
			ProductAbbr:          "S",
			Status:               StatusQuoted,
			CnPricingAdmin:       "Susana Wong",
			SalesCountryCode:     "DE",
			SalesOfficeID:        3,
			SalesOfficeName:      "ZIEGLER GERMANY",
			SalesOfficeCode:      "DE-ZD",
			SalesPicID:           5,
			SalesPicName:         "HANS MUELLER",
			AssignedCnOfficeCode: "NINGBO",
			CargoTypeCode:        "FCL",
			VolumeCbm:            ptr(66.0),
			Quantity:             ptr(1.0),
			QuantityUomCode:      "CTN",
			QuantityTeu:          2.0,
			Commodity:            "Furniture parts",
			PolID:                3,
			PolCode:              "CNNBO",
			PolName:              "Ningbo",
			PodID:                7,
			PodCode:              "DEHAM",
			PodName:              "Hamburg",
			PodCountryCode:       "DE",
			PodCountryName:       "GERMANY",
			CoreFlag:             CoreFlagCore,
			CategoryCode:         "OCEAN_FREIGHT_ORIGIN",
			CargoReadyDate:       "2026-01-22",
			BookingConfirmed:     BookingYes,
			Remark:               "Regular customer - priority handling",
			ContainerLines: []ContainerLine{
				{ID: 2, EnquiryID: 3, ContainerTypeID: 3, ContainerCode: "40HQ", Quantity: 1, TeuValue: 2.0, LineTeu: 2.0},
			},
			Offers: []Offer{
				{ID: 2, EnquiryID: 3, OfferType: OfferTypeOcean, SequenceNo: 1, IsLatest: false, SentDate: mustDate("2026-01-18"), Price: ptr(1800.0), PriceText: "USD 1,800"},
				{ID: 3, EnquiryID: 3, OfferType: OfferTypeOcean, SequenceNo: 2, IsLatest: true, SentDate: mustDate("2026-01-19"), Price: ptr(1650.0), PriceText: "USD 1,650 negotiated"},
			},
			CreatedAt: created.Add(48 * time.Hour),
			UpdatedAt: created.Add(48 * time.Hour),
		},
	}
}

func mustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T {
	return &v
}
