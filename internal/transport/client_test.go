package transport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logitrack/logitrack/internal/enquiry"
	"github.com/logitrack/logitrack/internal/refdata"
	"github.com/logitrack/logitrack/internal/shared"

	_ "github.com/logitrack/logitrack/testing"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	repo := enquiry.NewMemoryRepository()
	svc := enquiry.NewService(slog.Default(), repo, refdata.DefaultCatalog(),
		enquiry.WithClock(func() time.Time {
			return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		}),
	)
	handler := enquiry.NewHandler(slog.Default(), svc)

	router := chi.NewRouter()
	router.Route("/api/enquiries", handler.MountRoutes)
	router.Route("/api/offers", handler.MountOfferRoutes)
	router.Route("/api/stats", handler.MountStatsRoutes)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func createRequest() enquiry.CreateEnquiryRequest {
	return enquiry.CreateEnquiryRequest{
		EnquiryReceivedDate: mustDate("2026-03-09"),
		ProductCode:         "SEA",
		SalesCountryCode:    "FR",
		SalesPicID:          1,
		CargoTypeCode:       "FCL",
		Commodity:           "Electronics components",
		ContainerLines: []enquiry.ContainerLineInput{
			{ContainerTypeID: 3, Quantity: 2},
		},
	}
}

func mustDate(s string) enquiry.Date {
	d, err := enquiry.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestClientEnquiryRoundTrip(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)
	client := NewClient(server.URL)

	created, err := client.Create(ctx, createRequest())
	require.NoError(t, err)
	assert.Equal(t, "CN2603001-S", created.ReferenceNumber)

	got, err := client.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ReferenceNumber, got.ReferenceNumber)
	assert.InDelta(t, 4.0, got.QuantityTeu, 1e-9)

	updated, err := client.Update(ctx, created.ID, enquiry.UpdateEnquiryRequest{
		Commodity: ptr("Solar panels"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Solar panels", updated.Commodity)

	page, err := client.List(ctx, enquiry.ListEnquiriesRequest{Keyword: "solar"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.TotalCount)

	require.NoError(t, client.Delete(ctx, created.ID))

	_, err = client.Get(ctx, created.ID)
	var terr *shared.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusNotFound, terr.StatusCode)
	assert.Contains(t, terr.Body, "Not Found")
}

func TestClientListForwardsFilters(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)
	client := NewClient(server.URL)

	_, err := client.Create(ctx, createRequest())
	require.NoError(t, err)
	air := createRequest()
	air.ProductCode = "AIR"
	air.CargoTypeCode = "AIR"
	_, err = client.Create(ctx, air)
	require.NoError(t, err)

	page, err := client.List(ctx, enquiry.ListEnquiriesRequest{
		CargoTypes: []string{"AIR"},
		Statuses:   []enquiry.Status{enquiry.StatusNew},
		PageSize:   10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalCount)
}

func TestClientOfferLifecycle(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)
	client := NewClient(server.URL)

	created, err := client.Create(ctx, createRequest())
	require.NoError(t, err)

	offer, err := client.AddOffer(ctx, created.ID, enquiry.CreateOfferRequest{
		OfferType: enquiry.OfferTypeOcean,
		PriceText: "USD 2,500 all-in",
	})
	require.NoError(t, err)
	assert.True(t, offer.IsLatest)
	assert.Equal(t, 1, offer.SequenceNo)

	updated, err := client.UpdateOffer(ctx, offer.ID, enquiry.UpdateOfferRequest{
		PriceText: ptr("USD 2,400 revised"),
	})
	require.NoError(t, err)
	assert.Equal(t, "USD 2,400 revised", updated.PriceText)

	offers, err := client.ListOffers(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, offers, 1)

	require.NoError(t, client.DeleteOffer(ctx, offer.ID))

	offers, err = client.ListOffers(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestClientCopyAndStats(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t)
	client := NewClient(server.URL)

	created, err := client.Create(ctx, createRequest())
	require.NoError(t, err)

	copied, err := client.Copy(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, copied.ID)
	assert.NotEqual(t, created.ReferenceNumber, copied.ReferenceNumber)

	stats, err := client.DashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TodayNew)
}

func TestClientSurfacesConnectionErrors(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")
	client.WithHTTPClient(&http.Client{Timeout: 200 * time.Millisecond})

	_, err := client.Get(context.Background(), 1)

	var terr *shared.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Zero(t, terr.StatusCode)
	assert.Error(t, errors.Unwrap(terr))
}

func ptr[T any](v T) *T {
	return &v
}
