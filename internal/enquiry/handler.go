package enquiry

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/logitrack/logitrack/internal/platform/httpx"
)

// Handler serves the enquiry, offer and stats endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers the enquiry routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/copy", h.copy)
	r.Get("/{id}/offers", h.listOffers)
	r.Post("/{id}/offers", h.addOffer)
}

// MountOfferRoutes registers the enquiry-independent offer routes.
func (h *Handler) MountOfferRoutes(r chi.Router) {
	r.Put("/{offerID}", h.updateOffer)
	r.Delete("/{offerID}", h.deleteOffer)
}

// MountStatsRoutes registers the dashboard statistics route.
func (h *Handler) MountStatsRoutes(r chi.Router) {
	r.Get("/dashboard", h.dashboard)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	req, err := parseListRequest(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	page, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("list enquiries", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, page)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateEnquiryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	e, err := h.service.Create(r.Context(), req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, e)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	e, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, e)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateEnquiryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	e, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, e)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) copy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	e, err := h.service.Copy(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, e)
}

func (h *Handler) listOffers(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	offers, err := h.service.ListOffers(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if offers == nil {
		offers = []Offer{}
	}
	httpx.JSON(w, http.StatusOK, offers)
}

func (h *Handler) addOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req CreateOfferRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	offer, err := h.service.AddOffer(r.Context(), id, req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, offer)
}

func (h *Handler) updateOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "offerID")
	if !ok {
		return
	}
	var req UpdateOfferRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "malformed JSON body")
		return
	}
	offer, err := h.service.UpdateOffer(r.Context(), id, req)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, offer)
}

func (h *Handler) deleteOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "offerID")
	if !ok {
		return
	}
	if err := h.service.DeleteOffer(r.Context(), id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.DashboardStats(r.Context())
	if err != nil {
		h.logger.Error("dashboard stats", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid "+name)
		return 0, false
	}
	return id, true
}

func parseListRequest(r *http.Request) (ListEnquiriesRequest, error) {
	q := r.URL.Query()
	req := ListEnquiriesRequest{
		Keyword: q.Get("keyword"),
		SortDir: q.Get("sortDir"),
	}
	for _, s := range q["status"] {
		req.Statuses = append(req.Statuses, Status(s))
	}
	req.CargoTypes = q["cargoType"]
	req.SalesCountryCodes = q["salesCountry"]

	var err error
	if req.DateFrom, err = ParseDate(q.Get("dateFrom")); err != nil {
		return req, err
	}
	if req.DateTo, err = ParseDate(q.Get("dateTo")); err != nil {
		return req, err
	}
	if v := q.Get("page"); v != "" {
		if req.PageIndex, err = strconv.Atoi(v); err != nil {
			return req, err
		}
	}
	if v := q.Get("size"); v != "" {
		if req.PageSize, err = strconv.Atoi(v); err != nil {
			return req, err
		}
	}
	return req, nil
}
