package enquiry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logitrack/logitrack/internal/shared"
)

func latestOfType(offers []Offer, typ OfferType) []Offer {
	var out []Offer
	for _, o := range offers {
		if o.OfferType == typ && o.IsLatest {
			out = append(out, o)
		}
	}
	return out
}

func TestAddOfferTakesNextSequenceAndLatestFlag(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.Create(ctx, baseCreateRequest())
	require.NoError(t, err)

	first, err := svc.AddOffer(ctx, created.ID, CreateOfferRequest{
		OfferType: OfferTypeOcean,
		SentDate:  mustDate("2026-03-11"),
		Price:     ptr(2500.0),
		PriceText: "USD 2,500 all-in",
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Equal(t, 1, first.SequenceNo)
	assert.True(t, first.IsLatest)

	second, err := svc.AddOffer(ctx, created.ID, CreateOfferRequest{
		OfferType: OfferTypeOcean,
		SentDate:  mustDate("2026-03-12"),
		PriceText: "USD 2,350 revised",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.SequenceNo)
	assert.True(t, second.IsLatest)

	e, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, e.Offers, 2)
	require.Len(t, latestOfType(e.Offers, OfferTypeOcean), 1)
	assert.Equal(t, second.ID, latestOfType(e.Offers, OfferTypeOcean)[0].ID)
}

func TestAddOfferSequencesAreScopedByType(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.Create(ctx, baseCreateRequest())
	require.NoError(t, err)

	ocean, err := svc.AddOffer(ctx, created.ID, CreateOfferRequest{OfferType: OfferTypeOcean})
	require.NoError(t, err)
	air, err := svc.AddOffer(ctx, created.ID, CreateOfferRequest{OfferType: OfferTypeAir})
	require.NoError(t, err)

	assert.Equal(t, 1, ocean.SequenceNo)
	assert.Equal(t, 1, air.SequenceNo)

	e, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	// One latest per type, both latest.
	require.Len(t, latestOfType(e.Offers, OfferTypeOcean), 1)
	require.Len(t, latestOfType(e.Offers, OfferTypeAir), 1)
}

func TestAddOfferMovesNewEnquiryToQuoted(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.Create(ctx, baseCreateRequest())
	require.NoError(t, err)
	require.Equal(t, StatusNew, created.Status)

	_, err = svc.AddOffer(ctx, created.ID, CreateOfferRequest{OfferType: OfferTypeOcean})
	require.NoError(t, err)

	e, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusQuoted, e.Status)
}

func TestAddOfferKeepsNonNewStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	req := baseCreateRequest()
	req.Status = StatusPending
	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.AddOffer(ctx, created.ID, CreateOfferRequest{OfferType: OfferTypeOcean})
	require.NoError(t, err)

	e, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, e.Status)
}

func TestAddOfferDefaultsSentDate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.Create(ctx, baseCreateRequest())
	require.NoError(t, err)

	offer, err := svc.AddOffer(ctx, created.ID, CreateOfferRequest{OfferType: OfferTypeOther})

	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", offer.SentDate.String())
}

func TestAddOfferUnknownEnquiry(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddOffer(context.Background(), 999, CreateOfferRequest{OfferType: OfferTypeOcean})

	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAddOfferValidatesType(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.Create(ctx, baseCreateRequest())
	require.NoError(t, err)

	_, err = svc.AddOffer(ctx, created.ID, CreateOfferRequest{OfferType: "ROAD"})

	require.ErrorIs(t, err, shared.ErrValidation)
}

func TestUpdateOfferMergesFields(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	require.NoError(t, SeedDemoData(ctx, svc.repo))

	updated, err := svc.UpdateOffer(ctx, 3, UpdateOfferRequest{
		PriceText:       ptr("USD 1,600 final"),
		Price:           ptr(1600.0),
		IsRejectedPrice: ptr(true),
	})

	require.NoError(t, err)
	assert.Equal(t, "USD 1,600 final", updated.PriceText)
	assert.InDelta(t, 1600.0, *updated.Price, 1e-9)
	assert.True(t, updated.IsRejectedPrice)
	// Flags not submitted stay put.
	assert.True(t, updated.IsLatest)
	assert.Equal(t, 2, updated.SequenceNo)
}

func TestUpdateOfferLatestFlagClearsSiblings(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	require.NoError(t, SeedDemoData(ctx, svc.repo))

	// Offer 2 is the superseded first ocean quote on enquiry 3.
	updated, err := svc.UpdateOffer(ctx, 2, UpdateOfferRequest{IsLatest: ptr(true)})

	require.NoError(t, err)
	assert.True(t, updated.IsLatest)

	e, err := svc.Get(ctx, 3)
	require.NoError(t, err)
	flagged := latestOfType(e.Offers, OfferTypeOcean)
	require.Len(t, flagged, 1)
	assert.Equal(t, int64(2), flagged[0].ID)
}

func TestUpdateOfferUnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateOffer(context.Background(), 999, UpdateOfferRequest{PriceText: ptr("x")})

	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDeleteOfferPromotesHighestRemainingSequence(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.Create(ctx, baseCreateRequest())
	require.NoError(t, err)

	var offers []*Offer
	for i := 0; i < 3; i++ {
		o, err := svc.AddOffer(ctx, created.ID, CreateOfferRequest{OfferType: OfferTypeOcean})
		require.NoError(t, err)
		offers = append(offers, o)
	}

	// Deleting the latest (seq 3) hands the flag to seq 2.
	require.NoError(t, svc.DeleteOffer(ctx, offers[2].ID))

	e, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, e.Offers, 2)
	flagged := latestOfType(e.Offers, OfferTypeOcean)
	require.Len(t, flagged, 1)
	assert.Equal(t, 2, flagged[0].SequenceNo)
}

func TestDeleteOfferNonLatestKeepsFlag(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	require.NoError(t, SeedDemoData(ctx, svc.repo))

	require.NoError(t, svc.DeleteOffer(ctx, 2))

	e, err := svc.Get(ctx, 3)
	require.NoError(t, err)
	require.Len(t, e.Offers, 1)
	assert.True(t, e.Offers[0].IsLatest)
	assert.Equal(t, int64(3), e.Offers[0].ID)
}

func TestDeleteLastOfferLeavesNoneLatest(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.Create(ctx, baseCreateRequest())
	require.NoError(t, err)
	offer, err := svc.AddOffer(ctx, created.ID, CreateOfferRequest{OfferType: OfferTypeOcean})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteOffer(ctx, offer.ID))

	e, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, e.Offers)
	assert.Nil(t, e.LatestOffer())
}

func TestDeleteOfferUnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.DeleteOffer(context.Background(), 999)

	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestListOffersReturnsCreationOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	require.NoError(t, SeedDemoData(ctx, svc.repo))

	offers, err := svc.ListOffers(ctx, 3)

	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, 1, offers[0].SequenceNo)
	assert.Equal(t, 2, offers[1].SequenceNo)
}
