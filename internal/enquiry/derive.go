package enquiry

import (
	"fmt"
	"time"

	"github.com/logitrack/logitrack/internal/refdata"
	"github.com/logitrack/logitrack/internal/shared"
)

// ComputeTeuTotal sums quantity x teuValue over container lines.
func ComputeTeuTotal(lines []ContainerLine) float64 {
	var total float64
	for _, line := range lines {
		total += float64(line.Quantity) * line.TeuValue
	}
	return total
}

// ResolveContainerLine fills teuValue and lineTeu from the catalog.
// The submitted TEU value is always discarded in favour of the
// catalog's conversion factor.
func ResolveContainerLine(line ContainerLine, catalog *refdata.Catalog) (ContainerLine, error) {
	ct, ok := catalog.ContainerTypeByID(line.ContainerTypeID)
	if !ok {
		return ContainerLine{}, fmt.Errorf("%w: container type %d", shared.ErrReferenceNotFound, line.ContainerTypeID)
	}
	line.ContainerCode = ct.ContainerCode
	line.TeuValue = ct.TeuValue
	line.LineTeu = float64(line.Quantity) * ct.TeuValue
	return line, nil
}

// ReferenceMonth derives the YYMM month code from an issue date.
func ReferenceMonth(issueDate time.Time) string {
	return issueDate.Format("0601")
}

// GenerateReferenceNumber builds the next reference number for a
// month. monthCount is the number of enquiries already tagged with the
// issue date's reference month; the sequence is count based, not max
// based. In strict mode an unknown product code fails with
// ReferenceNotFound; otherwise the abbreviation falls back to "X".
func GenerateReferenceNumber(issueDate time.Time, productCode string, monthCount int, catalog *refdata.Catalog, strict bool) (refNumber, refMonth, abbr string, seq int, err error) {
	refMonth = ReferenceMonth(issueDate)
	seq = monthCount + 1

	product, ok := catalog.ProductByCode(productCode)
	switch {
	case ok:
		abbr = product.Abbr
	case strict:
		return "", "", "", 0, fmt.Errorf("%w: product %s", shared.ErrReferenceNotFound, productCode)
	default:
		abbr = "X"
	}

	refNumber = fmt.Sprintf("CN%s%03d-%s", refMonth, seq, abbr)
	return refNumber, refMonth, abbr, seq, nil
}

// ResolveDenormalizedFields copies human readable names from the
// catalogs onto the enquiry. Joins are best effort: an unresolved
// reference leaves the display field blank and never blocks a write.
func ResolveDenormalizedFields(e *Enquiry, catalog *refdata.Catalog) {
	e.SalesOfficeID = 0
	e.SalesOfficeName = ""
	e.SalesOfficeCode = ""
	e.SalesPicName = ""
	if pic, ok := catalog.SalesPicByID(e.SalesPicID); ok {
		e.SalesPicName = pic.Name
		if office, ok := catalog.SalesOfficeByID(pic.SalesOfficeID); ok {
			e.SalesOfficeID = office.ID
			e.SalesOfficeName = office.Name
			e.SalesOfficeCode = office.Code
		}
	}

	e.PolCode = ""
	e.PolName = ""
	if pol, ok := catalog.PortByID(e.PolID); ok {
		e.PolCode = pol.PortCode
		e.PolName = pol.PortName
	}

	e.PodCode = ""
	e.PodName = ""
	e.PodCountryCode = ""
	e.PodCountryName = ""
	if pod, ok := catalog.PortByID(e.PodID); ok {
		e.PodCode = pod.PortCode
		e.PodName = pod.PortName
		e.PodCountryCode = pod.CountryCode
		if country, ok := catalog.CountryByCode(pod.CountryCode); ok {
			e.PodCountryName = country.CountryNameEn
		}
	}
}
