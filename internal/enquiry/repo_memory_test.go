package enquiry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logitrack/logitrack/internal/shared"
)

func TestMemoryRepositoryInsertsAtHead(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	first := &Enquiry{ReferenceNumber: "CN2601001-S"}
	second := &Enquiry{ReferenceNumber: "CN2601002-A"}
	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, second))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "CN2601002-A", all[0].ReferenceNumber)
	assert.Equal(t, "CN2601001-S", all[1].ReferenceNumber)
	assert.Equal(t, int64(2), second.ID)
}

func TestMemoryRepositoryAssignsSubRecordIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	e := &Enquiry{
		ContainerLines: []ContainerLine{{ContainerTypeID: 3, Quantity: 2}},
		Offers:         []Offer{{OfferType: OfferTypeOcean, SequenceNo: 1, IsLatest: true}},
	}
	require.NoError(t, repo.Insert(ctx, e))

	assert.NotZero(t, e.ContainerLines[0].ID)
	assert.Equal(t, e.ID, e.ContainerLines[0].EnquiryID)
	assert.NotZero(t, e.Offers[0].ID)
	assert.Equal(t, e.ID, e.Offers[0].EnquiryID)
}

func TestMemoryRepositoryHonorsFixedIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Insert(ctx, &Enquiry{ID: 7}))
	next := &Enquiry{}
	require.NoError(t, repo.Insert(ctx, next))

	assert.Equal(t, int64(8), next.ID)
}

func TestMemoryRepositoryGetNotFound(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.Get(context.Background(), 42)

	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestMemoryRepositoryUpdateNotFound(t *testing.T) {
	repo := NewMemoryRepository()

	err := repo.Update(context.Background(), &Enquiry{ID: 42})

	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestMemoryRepositoryDeleteNotFound(t *testing.T) {
	repo := NewMemoryRepository()

	err := repo.Delete(context.Background(), 42)

	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestMemoryRepositoryIsolatesCallers(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	e := &Enquiry{
		Commodity:      "Furniture parts",
		VolumeCbm:      ptr(10.0),
		ContainerLines: []ContainerLine{{ContainerTypeID: 3, Quantity: 1, TeuValue: 2.0}},
	}
	require.NoError(t, repo.Insert(ctx, e))

	got, err := repo.Get(ctx, e.ID)
	require.NoError(t, err)
	got.Commodity = "mutated"
	*got.VolumeCbm = 99
	got.ContainerLines[0].Quantity = 50

	again, err := repo.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Furniture parts", again.Commodity)
	assert.InDelta(t, 10.0, *again.VolumeCbm, 1e-9)
	assert.Equal(t, 1, again.ContainerLines[0].Quantity)
}

func TestMemoryRepositoryCountByReferenceMonth(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.Insert(ctx, &Enquiry{ReferenceMonth: "2601"}))
	require.NoError(t, repo.Insert(ctx, &Enquiry{ReferenceMonth: "2601"}))
	require.NoError(t, repo.Insert(ctx, &Enquiry{ReferenceMonth: "2602"}))

	count, err := repo.CountByReferenceMonth(ctx, "2601")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.CountByReferenceMonth(ctx, "2603")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMemoryRepositoryGetByOfferID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	e := &Enquiry{Offers: []Offer{{OfferType: OfferTypeOcean, SequenceNo: 1, IsLatest: true}}}
	require.NoError(t, repo.Insert(ctx, e))

	owner, err := repo.GetByOfferID(ctx, e.Offers[0].ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, owner.ID)

	_, err = repo.GetByOfferID(ctx, 999)
	require.ErrorIs(t, err, shared.ErrNotFound)
}
