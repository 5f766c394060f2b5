package enquiry

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/logitrack/logitrack/internal/platform/db"
	"github.com/logitrack/logitrack/internal/shared"
)

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// PGRepository persists enquiries in PostgreSQL. It keeps the same
// semantics as the in-memory store: List orders newest first and
// sub-records live and die with their parent row.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewPGRepository constructs a PostgreSQL backed repository.
func NewPGRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

const enquiryColumns = `
	id, reference_number, enquiry_received_date, issue_date, reference_month,
	monthly_sequence, product_code, product_abbr, status, cn_pricing_admin,
	sales_country_code, sales_office_id, sales_office_name, sales_office_code,
	sales_pic_id, sales_pic_name, assigned_cn_office_code, cargo_type_code,
	volume_cbm, quantity, quantity_uom_code, quantity_teu, commodity,
	haz_special_equipment, additional_requirement, pol_id, pol_code, pol_name,
	pod_id, pod_code, pod_name, pod_country_code, pod_country_name, core_flag,
	category_code, cargo_ready_date, booking_confirmed, remark, rejected_reason,
	actual_reason, created_at, updated_at`

// Insert stores the enquiry and its sub-records.
func (r *PGRepository) Insert(ctx context.Context, e *Enquiry) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO enquiries (
				reference_number, enquiry_received_date, issue_date, reference_month,
				monthly_sequence, product_code, product_abbr, status, cn_pricing_admin,
				sales_country_code, sales_office_id, sales_office_name, sales_office_code,
				sales_pic_id, sales_pic_name, assigned_cn_office_code, cargo_type_code,
				volume_cbm, quantity, quantity_uom_code, quantity_teu, commodity,
				haz_special_equipment, additional_requirement, pol_id, pol_code, pol_name,
				pod_id, pod_code, pod_name, pod_country_code, pod_country_name, core_flag,
				category_code, cargo_ready_date, booking_confirmed, remark, rejected_reason,
				actual_reason, created_at, updated_at
			) VALUES (
				$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
				$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,$31,$32,$33,$34,$35,$36,$37,$38,
				$39,$40,$41
			) RETURNING id`,
			e.ReferenceNumber, dateParam(e.EnquiryReceivedDate), dateParam(e.IssueDate),
			e.ReferenceMonth, e.MonthlySequence, e.ProductCode, e.ProductAbbr, e.Status,
			e.CnPricingAdmin, e.SalesCountryCode, e.SalesOfficeID, e.SalesOfficeName,
			e.SalesOfficeCode, e.SalesPicID, e.SalesPicName, e.AssignedCnOfficeCode,
			e.CargoTypeCode, e.VolumeCbm, e.Quantity, e.QuantityUomCode, e.QuantityTeu,
			e.Commodity, e.HazSpecialEquipment, e.AdditionalRequirement, e.PolID,
			e.PolCode, e.PolName, e.PodID, e.PodCode, e.PodName, e.PodCountryCode,
			e.PodCountryName, e.CoreFlag, e.CategoryCode, e.CargoReadyDate,
			e.BookingConfirmed, e.Remark, e.RejectedReason, e.ActualReason,
			e.CreatedAt, e.UpdatedAt,
		)
		if err := row.Scan(&e.ID); err != nil {
			return err
		}
		for i := range e.ContainerLines {
			e.ContainerLines[i].ID = 0
		}
		for i := range e.Offers {
			e.Offers[i].ID = 0
		}
		if err := insertLines(ctx, tx, e); err != nil {
			return err
		}
		return upsertOffers(ctx, tx, e)
	})
}

// Get loads the full record.
func (r *PGRepository) Get(ctx context.Context, id int64) (*Enquiry, error) {
	e, err := scanEnquiry(r.pool.QueryRow(ctx,
		`SELECT `+enquiryColumns+` FROM enquiries WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: enquiry %d", shared.ErrNotFound, id)
		}
		return nil, err
	}
	if err := r.loadChildren(ctx, map[int64]*Enquiry{e.ID: e}); err != nil {
		return nil, err
	}
	return e, nil
}

// Update rewrites the row and reconciles sub-records.
func (r *PGRepository) Update(ctx context.Context, e *Enquiry) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE enquiries SET
				enquiry_received_date = $2, issue_date = $3, status = $4,
				cn_pricing_admin = $5, sales_country_code = $6, sales_office_id = $7,
				sales_office_name = $8, sales_office_code = $9, sales_pic_id = $10,
				sales_pic_name = $11, assigned_cn_office_code = $12, cargo_type_code = $13,
				volume_cbm = $14, quantity = $15, quantity_uom_code = $16,
				quantity_teu = $17, commodity = $18, haz_special_equipment = $19,
				additional_requirement = $20, pol_id = $21, pol_code = $22, pol_name = $23,
				pod_id = $24, pod_code = $25, pod_name = $26, pod_country_code = $27,
				pod_country_name = $28, core_flag = $29, category_code = $30,
				cargo_ready_date = $31, booking_confirmed = $32, remark = $33,
				rejected_reason = $34, actual_reason = $35, updated_at = $36
			WHERE id = $1`,
			e.ID, dateParam(e.EnquiryReceivedDate), dateParam(e.IssueDate), e.Status,
			e.CnPricingAdmin, e.SalesCountryCode, e.SalesOfficeID, e.SalesOfficeName,
			e.SalesOfficeCode, e.SalesPicID, e.SalesPicName, e.AssignedCnOfficeCode,
			e.CargoTypeCode, e.VolumeCbm, e.Quantity, e.QuantityUomCode, e.QuantityTeu,
			e.Commodity, e.HazSpecialEquipment, e.AdditionalRequirement, e.PolID,
			e.PolCode, e.PolName, e.PodID, e.PodCode, e.PodName, e.PodCountryCode,
			e.PodCountryName, e.CoreFlag, e.CategoryCode, e.CargoReadyDate,
			e.BookingConfirmed, e.Remark, e.RejectedReason, e.ActualReason, e.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: enquiry %d", shared.ErrNotFound, e.ID)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM container_lines WHERE enquiry_id = $1`, e.ID); err != nil {
			return err
		}
		for i := range e.ContainerLines {
			e.ContainerLines[i].ID = 0
		}
		if err := insertLines(ctx, tx, e); err != nil {
			return err
		}
		return upsertOffers(ctx, tx, e)
	})
}

// Delete removes the enquiry; sub-records go with it via cascade.
func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM enquiries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: enquiry %d", shared.ErrNotFound, id)
	}
	return nil
}

// List loads all enquiries newest first, with sub-records attached.
func (r *PGRepository) List(ctx context.Context) ([]*Enquiry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+enquiryColumns+` FROM enquiries ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Enquiry
	index := make(map[int64]*Enquiry)
	for rows.Next() {
		e, err := scanEnquiry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
		index[e.ID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadChildren(ctx, index); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByReferenceMonth counts enquiries tagged with a YYMM code.
func (r *PGRepository) CountByReferenceMonth(ctx context.Context, refMonth string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM enquiries WHERE reference_month = $1`, refMonth).Scan(&count)
	return count, err
}

// GetByOfferID resolves the owning enquiry of an offer.
func (r *PGRepository) GetByOfferID(ctx context.Context, offerID int64) (*Enquiry, error) {
	var enquiryID int64
	err := r.pool.QueryRow(ctx,
		`SELECT enquiry_id FROM offers WHERE id = $1`, offerID).Scan(&enquiryID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: offer %d", shared.ErrNotFound, offerID)
		}
		return nil, err
	}
	return r.Get(ctx, enquiryID)
}

func (r *PGRepository) loadChildren(ctx context.Context, index map[int64]*Enquiry) error {
	if len(index) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(index))
	for id := range index {
		ids = append(ids, id)
	}

	lineRows, err := r.pool.Query(ctx, `
		SELECT id, enquiry_id, container_type_id, container_code, quantity, teu_value, line_teu
		FROM container_lines WHERE enquiry_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return err
	}
	defer lineRows.Close()
	for lineRows.Next() {
		var line ContainerLine
		if err := lineRows.Scan(&line.ID, &line.EnquiryID, &line.ContainerTypeID,
			&line.ContainerCode, &line.Quantity, &line.TeuValue, &line.LineTeu); err != nil {
			return err
		}
		if parent, ok := index[line.EnquiryID]; ok {
			parent.ContainerLines = append(parent.ContainerLines, line)
		}
	}
	if err := lineRows.Err(); err != nil {
		return err
	}

	offerRows, err := r.pool.Query(ctx, `
		SELECT id, enquiry_id, offer_type, sequence_no, is_latest, sent_date,
		       price, price_text, is_rejected_price, created_at, updated_at
		FROM offers WHERE enquiry_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return err
	}
	defer offerRows.Close()
	for offerRows.Next() {
		var (
			offer Offer
			sent  pgtype.Date
		)
		if err := offerRows.Scan(&offer.ID, &offer.EnquiryID, &offer.OfferType,
			&offer.SequenceNo, &offer.IsLatest, &sent, &offer.Price, &offer.PriceText,
			&offer.IsRejectedPrice, &offer.CreatedAt, &offer.UpdatedAt); err != nil {
			return err
		}
		if sent.Valid {
			offer.SentDate = NewDate(sent.Time)
		}
		if parent, ok := index[offer.EnquiryID]; ok {
			parent.Offers = append(parent.Offers, offer)
		}
	}
	return offerRows.Err()
}

func insertLines(ctx context.Context, tx dbtx, e *Enquiry) error {
	for i := range e.ContainerLines {
		line := &e.ContainerLines[i]
		line.EnquiryID = e.ID
		err := tx.QueryRow(ctx, `
			INSERT INTO container_lines (enquiry_id, container_type_id, container_code, quantity, teu_value, line_teu)
			VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
			line.EnquiryID, line.ContainerTypeID, line.ContainerCode,
			line.Quantity, line.TeuValue, line.LineTeu,
		).Scan(&line.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

// upsertOffers reconciles the offers table with the in-memory slice:
// new offers are inserted, existing ones updated, missing ones removed.
func upsertOffers(ctx context.Context, tx dbtx, e *Enquiry) error {
	keep := make([]int64, 0, len(e.Offers))
	for i := range e.Offers {
		offer := &e.Offers[i]
		offer.EnquiryID = e.ID
		if offer.ID == 0 {
			err := tx.QueryRow(ctx, `
				INSERT INTO offers (enquiry_id, offer_type, sequence_no, is_latest, sent_date,
					price, price_text, is_rejected_price, created_at, updated_at)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING id`,
				offer.EnquiryID, offer.OfferType, offer.SequenceNo, offer.IsLatest,
				dateParam(offer.SentDate), offer.Price, offer.PriceText,
				offer.IsRejectedPrice, offer.CreatedAt, offer.UpdatedAt,
			).Scan(&offer.ID)
			if err != nil {
				return err
			}
		} else {
			_, err := tx.Exec(ctx, `
				UPDATE offers SET offer_type = $2, sequence_no = $3, is_latest = $4,
					sent_date = $5, price = $6, price_text = $7, is_rejected_price = $8,
					updated_at = $9
				WHERE id = $1`,
				offer.ID, offer.OfferType, offer.SequenceNo, offer.IsLatest,
				dateParam(offer.SentDate), offer.Price, offer.PriceText,
				offer.IsRejectedPrice, offer.UpdatedAt,
			)
			if err != nil {
				return err
			}
		}
		keep = append(keep, offer.ID)
	}
	_, err := tx.Exec(ctx,
		`DELETE FROM offers WHERE enquiry_id = $1 AND NOT (id = ANY($2))`, e.ID, keep)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEnquiry(row rowScanner) (*Enquiry, error) {
	var (
		e        Enquiry
		received pgtype.Date
		issue    pgtype.Date
	)
	err := row.Scan(
		&e.ID, &e.ReferenceNumber, &received, &issue, &e.ReferenceMonth,
		&e.MonthlySequence, &e.ProductCode, &e.ProductAbbr, &e.Status, &e.CnPricingAdmin,
		&e.SalesCountryCode, &e.SalesOfficeID, &e.SalesOfficeName, &e.SalesOfficeCode,
		&e.SalesPicID, &e.SalesPicName, &e.AssignedCnOfficeCode, &e.CargoTypeCode,
		&e.VolumeCbm, &e.Quantity, &e.QuantityUomCode, &e.QuantityTeu, &e.Commodity,
		&e.HazSpecialEquipment, &e.AdditionalRequirement, &e.PolID, &e.PolCode, &e.PolName,
		&e.PodID, &e.PodCode, &e.PodName, &e.PodCountryCode, &e.PodCountryName, &e.CoreFlag,
		&e.CategoryCode, &e.CargoReadyDate, &e.BookingConfirmed, &e.Remark, &e.RejectedReason,
		&e.ActualReason, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if received.Valid {
		e.EnquiryReceivedDate = NewDate(received.Time)
	}
	if issue.Valid {
		e.IssueDate = NewDate(issue.Time)
	}
	return &e, nil
}

func dateParam(d Date) pgtype.Date {
	if d.IsZero() {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: d.Time, Valid: true}
}
