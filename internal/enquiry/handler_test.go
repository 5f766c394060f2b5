package enquiry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logitrack/logitrack/internal/refdata"
)

func newTestRouter(t *testing.T) (chi.Router, *Service) {
	t.Helper()
	repo := NewMemoryRepository()
	svc := NewService(slog.Default(), repo, refdata.DefaultCatalog(),
		WithClock(func() time.Time { return fixedNow }),
	)
	handler := NewHandler(slog.Default(), svc)

	router := chi.NewRouter()
	router.Route("/api/enquiries", handler.MountRoutes)
	router.Route("/api/offers", handler.MountOfferRoutes)
	router.Route("/api/stats", handler.MountStatsRoutes)
	return router, svc
}

func doJSON(t *testing.T, router chi.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandlerCreateEnquiry(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/enquiries", baseCreateRequest())

	require.Equal(t, http.StatusCreated, rec.Code)
	var created Enquiry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "CN2603001-S", created.ReferenceNumber)
	assert.Equal(t, StatusNew, created.Status)
}

func TestHandlerCreateValidationProblem(t *testing.T) {
	router, _ := newTestRouter(t)

	req := baseCreateRequest()
	req.SalesCountryCode = ""
	rec := doJSON(t, router, http.MethodPost, "/api/enquiries", req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "SalesCountryCode")
}

func TestHandlerCreateUnknownReference(t *testing.T) {
	router, _ := newTestRouter(t)

	req := baseCreateRequest()
	req.ContainerLines = []ContainerLineInput{{ContainerTypeID: 999, Quantity: 1}}
	rec := doJSON(t, router, http.MethodPost, "/api/enquiries", req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandlerCreateMalformedBody(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/enquiries", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerListEnvelope(t *testing.T) {
	router, svc := newTestRouter(t)
	require.NoError(t, SeedDemoData(context.Background(), svc.repo))

	rec := doJSON(t, router, http.MethodGet, "/api/enquiries?status=Quoted&size=1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var page EnquiryPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 2, page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 0, page.PageIndex)
	assert.Equal(t, 1, page.PageSize)
	require.Len(t, page.Items, 1)
	assert.Equal(t, StatusQuoted, page.Items[0].Status)
}

func TestHandlerGetNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/enquiries/42", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not Found")
}

func TestHandlerRejectsBadPathID(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/enquiries/abc", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerUpdateEnquiry(t *testing.T) {
	router, svc := newTestRouter(t)
	created, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/enquiries/%d", created.ID), map[string]interface{}{
		"commodity": "Solar panels",
		"status":    "Pending",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var updated Enquiry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Solar panels", updated.Commodity)
	assert.Equal(t, StatusPending, updated.Status)
	assert.Equal(t, created.ReferenceNumber, updated.ReferenceNumber)
}

func TestHandlerDeleteEnquiry(t *testing.T) {
	router, svc := newTestRouter(t)
	created, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/enquiries/%d", created.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/enquiries/%d", created.ID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerCopyEnquiry(t *testing.T) {
	router, svc := newTestRouter(t)
	created, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/enquiries/%d/copy", created.ID), nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	var copied Enquiry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &copied))
	assert.NotEqual(t, created.ID, copied.ID)
	assert.NotEqual(t, created.ReferenceNumber, copied.ReferenceNumber)
	assert.Empty(t, copied.Offers)
}

func TestHandlerOfferLifecycle(t *testing.T) {
	router, svc := newTestRouter(t)
	created, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/enquiries/%d/offers", created.ID), CreateOfferRequest{
		OfferType: OfferTypeOcean,
		PriceText: "USD 2,500 all-in",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var offer Offer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &offer))
	assert.True(t, offer.IsLatest)

	rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/offers/%d", offer.ID), map[string]interface{}{
		"priceText": "USD 2,400 revised",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &offer))
	assert.Equal(t, "USD 2,400 revised", offer.PriceText)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/enquiries/%d/offers", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var offers []Offer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &offers))
	require.Len(t, offers, 1)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/offers/%d", offer.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/enquiries/%d/offers", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandlerDashboard(t *testing.T) {
	router, svc := newTestRouter(t)
	_, err := svc.Create(context.Background(), baseCreateRequest())
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/api/stats/dashboard", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var stats DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TodayNew)
	assert.Equal(t, 1, stats.PendingQuote)
}
