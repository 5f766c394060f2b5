package enquiry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"

	"github.com/logitrack/logitrack/internal/observability"
	"github.com/logitrack/logitrack/internal/refdata"
	"github.com/logitrack/logitrack/internal/shared"
)

var foldCaser = cases.Fold()

// Service owns the enquiry collection and its derivation rules. All
// mutations fail fast: nothing is written until every lookup and
// validation has passed.
type Service struct {
	logger       *slog.Logger
	repo         Repository
	catalog      *refdata.Catalog
	metrics      *observability.Metrics
	validate     *validator.Validate
	strictRefnum bool
	now          func() time.Time

	statsGroup singleflight.Group
}

// ServiceOption tweaks Service construction.
type ServiceOption func(*Service)

// WithStrictReferenceNumbers makes reference generation fail on an
// unknown product code instead of falling back to "X".
func WithStrictReferenceNumbers(strict bool) ServiceOption {
	return func(s *Service) { s.strictRefnum = strict }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// WithMetrics attaches mutation counters.
func WithMetrics(m *observability.Metrics) ServiceOption {
	return func(s *Service) { s.metrics = m }
}

// NewService constructs a Service.
func NewService(logger *slog.Logger, repo Repository, catalog *refdata.Catalog, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		logger:   logger,
		repo:     repo,
		catalog:  catalog,
		validate: validator.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the form data, derives the reference number and
// computed fields, and inserts the record at the head of the list.
func (s *Service) Create(ctx context.Context, req CreateEnquiryRequest) (*Enquiry, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrValidation, validationDetail(err))
	}

	now := s.now()
	issueDate := req.IssueDate
	if issueDate.IsZero() {
		issueDate = NewDate(now)
	}

	lines, err := s.resolveLines(req.ContainerLines)
	if err != nil {
		return nil, err
	}

	refMonth := ReferenceMonth(issueDate.Time)
	monthCount, err := s.repo.CountByReferenceMonth(ctx, refMonth)
	if err != nil {
		return nil, err
	}
	refNumber, refMonth, abbr, seq, err := GenerateReferenceNumber(issueDate.Time, req.ProductCode, monthCount, s.catalog, s.strictRefnum)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = StatusNew
	}
	booking := req.BookingConfirmed
	if booking == "" {
		booking = BookingPending
	}

	e := &Enquiry{
		ReferenceNumber:     refNumber,
		EnquiryReceivedDate: req.EnquiryReceivedDate,
		IssueDate:           issueDate,
		ReferenceMonth:      refMonth,
		MonthlySequence:     seq,
		ProductCode:         req.ProductCode,
		ProductAbbr:         abbr,
		Status:              status,

		CnPricingAdmin:       req.CnPricingAdmin,
		SalesCountryCode:     req.SalesCountryCode,
		SalesPicID:           req.SalesPicID,
		AssignedCnOfficeCode: req.AssignedCnOfficeCode,

		CargoTypeCode:         req.CargoTypeCode,
		VolumeCbm:             req.VolumeCbm,
		Quantity:              req.Quantity,
		QuantityUomCode:       req.QuantityUomCode,
		QuantityTeu:           ComputeTeuTotal(lines),
		Commodity:             req.Commodity,
		HazSpecialEquipment:   req.HazSpecialEquipment,
		AdditionalRequirement: req.AdditionalRequirement,

		PolID: req.PolID,
		PodID: req.PodID,

		CoreFlag:         req.CoreFlag,
		CategoryCode:     req.CategoryCode,
		CargoReadyDate:   req.CargoReadyDate,
		BookingConfirmed: booking,

		Remark:         req.Remark,
		RejectedReason: req.RejectedReason,
		ActualReason:   req.ActualReason,

		ContainerLines: lines,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	ResolveDenormalizedFields(e, s.catalog)

	if err := s.repo.Insert(ctx, e); err != nil {
		return nil, err
	}
	s.metrics.CountEnquiry("create")
	s.logger.Info("enquiry created",
		slog.Int64("id", e.ID),
		slog.String("reference", e.ReferenceNumber),
	)
	return e, nil
}

// Get returns the full record including nested lines and offers.
func (s *Service) Get(ctx context.Context, id int64) (*Enquiry, error) {
	return s.repo.Get(ctx, id)
}

// Update merges the provided fields onto an existing record. The
// reference number and its month tag are never altered.
func (s *Service) Update(ctx context.Context, id int64, req UpdateEnquiryRequest) (*Enquiry, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrValidation, validationDetail(err))
	}

	e, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ContainerLines != nil {
		lines, err := s.resolveLines(*req.ContainerLines)
		if err != nil {
			return nil, err
		}
		e.ContainerLines = lines
		e.QuantityTeu = ComputeTeuTotal(lines)
	}

	applyUpdate(e, req)
	ResolveDenormalizedFields(e, s.catalog)
	e.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	s.metrics.CountEnquiry("update")
	return e, nil
}

// Delete removes the record and everything nested under it. Deleting
// an unknown ID is an error, not a no-op.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.metrics.CountEnquiry("delete")
	return nil
}

// Copy duplicates an enquiry as a fresh record: new identifier, new
// reference number, no offers, issue date now, status New and booking
// reset to Pending. Everything else carries over.
func (s *Service) Copy(ctx context.Context, id int64) (*Enquiry, error) {
	original, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req := CreateEnquiryRequest{
		EnquiryReceivedDate:   original.EnquiryReceivedDate,
		IssueDate:             NewDate(s.now()),
		ProductCode:           original.ProductCode,
		Status:                StatusNew,
		CnPricingAdmin:        original.CnPricingAdmin,
		SalesCountryCode:      original.SalesCountryCode,
		SalesPicID:            original.SalesPicID,
		AssignedCnOfficeCode:  original.AssignedCnOfficeCode,
		CargoTypeCode:         original.CargoTypeCode,
		VolumeCbm:             original.VolumeCbm,
		Quantity:              original.Quantity,
		QuantityUomCode:       original.QuantityUomCode,
		Commodity:             original.Commodity,
		HazSpecialEquipment:   original.HazSpecialEquipment,
		AdditionalRequirement: original.AdditionalRequirement,
		PolID:                 original.PolID,
		PodID:                 original.PodID,
		CoreFlag:              original.CoreFlag,
		CategoryCode:          original.CategoryCode,
		CargoReadyDate:        original.CargoReadyDate,
		BookingConfirmed:      BookingPending,
		Remark:                original.Remark,
		RejectedReason:        original.RejectedReason,
		ActualReason:          original.ActualReason,
	}
	for _, line := range original.ContainerLines {
		req.ContainerLines = append(req.ContainerLines, ContainerLineInput{
			ContainerTypeID: line.ContainerTypeID,
			Quantity:        line.Quantity,
		})
	}

	copied, err := s.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("enquiry copied",
		slog.Int64("source", id),
		slog.Int64("id", copied.ID),
	)
	return copied, nil
}

// List filters, sorts and paginates the collection.
func (s *Service) List(ctx context.Context, req ListEnquiriesRequest) (*EnquiryPage, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrValidation, validationDetail(err))
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = shared.DefaultPageSize
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := all[:0:0]
	for _, e := range all {
		if s.matches(e, req) {
			filtered = append(filtered, e)
		}
	}

	asc := req.SortDir == "asc"
	sort.SliceStable(filtered, func(i, j int) bool {
		if asc {
			return filtered[i].IssueDate.Before(filtered[j].IssueDate.Time)
		}
		return filtered[i].IssueDate.After(filtered[j].IssueDate.Time)
	})

	p := shared.NewPagination(req.PageIndex, pageSize, len(filtered))
	start, end := p.Bounds()

	items := make([]EnquiryListItem, 0, end-start)
	for _, e := range filtered[start:end] {
		items = append(items, projectListItem(e))
	}

	return &EnquiryPage{
		Items:      items,
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
		PageIndex:  p.PageIndex,
		PageSize:   p.PageSize,
	}, nil
}

func (s *Service) matches(e *Enquiry, req ListEnquiriesRequest) bool {
	if req.Keyword != "" {
		kw := foldCaser.String(req.Keyword)
		if !strings.Contains(foldCaser.String(e.ReferenceNumber), kw) &&
			!strings.Contains(foldCaser.String(e.Commodity), kw) &&
			!strings.Contains(foldCaser.String(e.SalesPicName), kw) {
			return false
		}
	}
	if len(req.Statuses) > 0 && !containsValue(req.Statuses, e.Status) {
		return false
	}
	if len(req.CargoTypes) > 0 && !containsValue(req.CargoTypes, e.CargoTypeCode) {
		return false
	}
	if len(req.SalesCountryCodes) > 0 && !containsValue(req.SalesCountryCodes, e.SalesCountryCode) {
		return false
	}
	if !req.DateFrom.IsZero() && e.IssueDate.Before(req.DateFrom.Time) {
		return false
	}
	if !req.DateTo.IsZero() && e.IssueDate.After(req.DateTo.Time) {
		return false
	}
	return true
}

func (s *Service) resolveLines(inputs []ContainerLineInput) ([]ContainerLine, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	lines := make([]ContainerLine, 0, len(inputs))
	for _, in := range inputs {
		line, err := ResolveContainerLine(ContainerLine{
			ContainerTypeID: in.ContainerTypeID,
			Quantity:        in.Quantity,
		}, s.catalog)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func projectListItem(e *Enquiry) EnquiryListItem {
	item := EnquiryListItem{
		ID:                  e.ID,
		ReferenceNumber:     e.ReferenceNumber,
		EnquiryReceivedDate: e.EnquiryReceivedDate,
		IssueDate:           e.IssueDate,
		Status:              e.Status,
		ProductAbbr:         e.ProductAbbr,
		SalesCountryCode:    e.SalesCountryCode,
		SalesOfficeName:     e.SalesOfficeName,
		SalesPicName:        e.SalesPicName,
		CargoTypeCode:       e.CargoTypeCode,
		PolName:             e.PolName,
		PodName:             e.PodName,
		PodCountryName:      e.PodCountryName,
		QuantityTeu:         e.QuantityTeu,
		BookingConfirmed:    e.BookingConfirmed,
		OfferCount:          len(e.Offers),
	}
	if latest := e.LatestOffer(); latest != nil {
		item.LatestOfferDate = latest.SentDate
		item.LatestOfferPrice = latest.PriceText
	}
	return item
}

func applyUpdate(e *Enquiry, req UpdateEnquiryRequest) {
	if req.EnquiryReceivedDate != nil {
		e.EnquiryReceivedDate = *req.EnquiryReceivedDate
	}
	if req.IssueDate != nil {
		e.IssueDate = *req.IssueDate
	}
	if req.Status != nil {
		e.Status = *req.Status
	}
	if req.CnPricingAdmin != nil {
		e.CnPricingAdmin = *req.CnPricingAdmin
	}
	if req.SalesCountryCode != nil {
		e.SalesCountryCode = *req.SalesCountryCode
	}
	if req.SalesPicID != nil {
		e.SalesPicID = *req.SalesPicID
	}
	if req.AssignedCnOfficeCode != nil {
		e.AssignedCnOfficeCode = *req.AssignedCnOfficeCode
	}
	if req.CargoTypeCode != nil {
		e.CargoTypeCode = *req.CargoTypeCode
	}
	if req.VolumeCbm != nil {
		e.VolumeCbm = req.VolumeCbm
	}
	if req.Quantity != nil {
		e.Quantity = req.Quantity
	}
	if req.QuantityUomCode != nil {
		e.QuantityUomCode = *req.QuantityUomCode
	}
	if req.Commodity != nil {
		e.Commodity = *req.Commodity
	}
	if req.HazSpecialEquipment != nil {
		e.HazSpecialEquipment = *req.HazSpecialEquipment
	}
	if req.AdditionalRequirement != nil {
		e.AdditionalRequirement = *req.AdditionalRequirement
	}
	if req.PolID != nil {
		e.PolID = *req.PolID
	}
	if req.PodID != nil {
		e.PodID = *req.PodID
	}
	if req.CoreFlag != nil {
		e.CoreFlag = *req.CoreFlag
	}
	if req.CategoryCode != nil {
		e.CategoryCode = *req.CategoryCode
	}
	if req.CargoReadyDate != nil {
		e.CargoReadyDate = *req.CargoReadyDate
	}
	if req.BookingConfirmed != nil {
		e.BookingConfirmed = *req.BookingConfirmed
	}
	if req.Remark != nil {
		e.Remark = *req.Remark
	}
	if req.RejectedReason != nil {
		e.RejectedReason = *req.RejectedReason
	}
	if req.ActualReason != nil {
		e.ActualReason = *req.ActualReason
	}
}

func containsValue[T comparable](set []T, v T) bool {
	for _, item := range set {
		if item == v {
			return true
		}
	}
	return false
}

func validationDetail(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		parts := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			parts = append(parts, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
		return strings.Join(parts, "; ")
	}
	return err.Error()
}
