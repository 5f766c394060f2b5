package enquiry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/logitrack/logitrack/internal/shared"
)

// ListOffers returns the offers of an enquiry in creation order.
func (s *Service) ListOffers(ctx context.Context, enquiryID int64) ([]Offer, error) {
	e, err := s.repo.Get(ctx, enquiryID)
	if err != nil {
		return nil, err
	}
	return e.Offers, nil
}

// AddOffer appends a new offer to an enquiry. Existing offers of the
// same type lose their latest flag, the new offer takes the next
// sequence number for its type and becomes latest, and a New enquiry
// moves to Quoted.
func (s *Service) AddOffer(ctx context.Context, enquiryID int64, req CreateOfferRequest) (*Offer, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrValidation, validationDetail(err))
	}

	e, err := s.repo.Get(ctx, enquiryID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sentDate := req.SentDate
	if sentDate.IsZero() {
		sentDate = NewDate(now)
	}

	sameType := 0
	for i := range e.Offers {
		if e.Offers[i].OfferType == req.OfferType {
			sameType++
			e.Offers[i].IsLatest = false
		}
	}

	offer := Offer{
		EnquiryID:  enquiryID,
		OfferType:  req.OfferType,
		SequenceNo: sameType + 1,
		IsLatest:   true,
		SentDate:   sentDate,
		Price:      req.Price,
		PriceText:  req.PriceText,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	e.Offers = append(e.Offers, offer)

	if e.Status == StatusNew {
		e.Status = StatusQuoted
	}
	e.UpdatedAt = now

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	created := e.Offers[len(e.Offers)-1]
	s.metrics.CountOffer("create", string(created.OfferType))
	s.logger.Info("offer added",
		slog.Int64("enquiry", enquiryID),
		slog.Int64("offer", created.ID),
		slog.String("type", string(created.OfferType)),
	)
	return &created, nil
}

// UpdateOffer merges fields onto an existing offer, located across all
// enquiries. Setting isLatest clears the flag on same-type siblings.
func (s *Service) UpdateOffer(ctx context.Context, offerID int64, req UpdateOfferRequest) (*Offer, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrValidation, validationDetail(err))
	}

	e, err := s.repo.GetByOfferID(ctx, offerID)
	if err != nil {
		return nil, err
	}

	idx := offerIndex(e.Offers, offerID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: offer %d", shared.ErrNotFound, offerID)
	}
	offer := &e.Offers[idx]

	if req.SentDate != nil {
		offer.SentDate = *req.SentDate
	}
	if req.Price != nil {
		offer.Price = req.Price
	}
	if req.PriceText != nil {
		offer.PriceText = *req.PriceText
	}
	if req.IsRejectedPrice != nil {
		offer.IsRejectedPrice = *req.IsRejectedPrice
	}
	if req.IsLatest != nil {
		offer.IsLatest = *req.IsLatest
		if *req.IsLatest {
			for i := range e.Offers {
				if i != idx && e.Offers[i].OfferType == offer.OfferType {
					e.Offers[i].IsLatest = false
				}
			}
		}
	}
	now := s.now()
	offer.UpdatedAt = now
	e.UpdatedAt = now

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	updated := e.Offers[idx]
	s.metrics.CountOffer("update", string(updated.OfferType))
	return &updated, nil
}

// DeleteOffer removes an offer. When the deleted offer was latest, the
// remaining same-type offer with the highest sequence number takes
// over the flag; deleting the last offer of a type leaves none latest.
func (s *Service) DeleteOffer(ctx context.Context, offerID int64) error {
	e, err := s.repo.GetByOfferID(ctx, offerID)
	if err != nil {
		return err
	}

	idx := offerIndex(e.Offers, offerID)
	if idx < 0 {
		return fmt.Errorf("%w: offer %d", shared.ErrNotFound, offerID)
	}
	removed := e.Offers[idx]
	e.Offers = append(e.Offers[:idx], e.Offers[idx+1:]...)

	if removed.IsLatest {
		promote := -1
		for i := range e.Offers {
			if e.Offers[i].OfferType != removed.OfferType {
				continue
			}
			if promote < 0 || e.Offers[i].SequenceNo > e.Offers[promote].SequenceNo {
				promote = i
			}
		}
		if promote >= 0 {
			e.Offers[promote].IsLatest = true
		}
	}
	e.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, e); err != nil {
		return err
	}
	s.metrics.CountOffer("delete", string(removed.OfferType))
	return nil
}

func offerIndex(offers []Offer, offerID int64) int {
	for i := range offers {
		if offers[i].ID == offerID {
			return i
		}
	}
	return -1
}
