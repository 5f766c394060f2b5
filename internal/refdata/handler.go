package refdata

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/logitrack/logitrack/internal/platform/httpx"
	"github.com/logitrack/logitrack/internal/shared"
)

// Handler serves the master data lookup endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers master data routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/sales-countries", h.listSalesCountries)
	r.Get("/sales-pics", h.listSalesPics)
	r.Get("/sales-offices/{id}", h.getSalesOffice)
	r.Get("/ports", h.searchPorts)
	r.Get("/ports/{id}", h.getPort)
	r.Get("/container-types", h.listContainerTypes)
	r.Get("/cn-offices", h.listCnOffices)
	r.Get("/cargo-types", h.listCargoTypes)
	r.Get("/products", h.listProducts)
	r.Get("/uoms", h.listUoms)
	r.Get("/categories", h.listCategories)
}

func (h *Handler) listSalesCountries(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.SalesCountries(r.Context())
	if err != nil {
		h.logger.Error("list sales countries", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, emptyIfNil(out))
}

func (h *Handler) listSalesPics(w http.ResponseWriter, r *http.Request) {
	countryCode := r.URL.Query().Get("countryCode")
	if countryCode == "" {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "countryCode is required")
		return
	}
	out, err := h.service.SalesPicsByCountry(r.Context(), countryCode)
	if err != nil {
		h.logger.Error("list sales pics", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, emptyIfNil(out))
}

func (h *Handler) getSalesOffice(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid sales office id")
		return
	}
	office, ok := h.service.Catalog().SalesOfficeByID(id)
	if !ok {
		httpx.RespondError(w, shared.ErrNotFound)
		return
	}
	httpx.JSON(w, http.StatusOK, office)
}

func (h *Handler) searchPorts(w http.ResponseWriter, r *http.Request) {
	portType := PortType(r.URL.Query().Get("type"))
	if portType != PortTypeSea && portType != PortTypeAir {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "type must be SEA or AIR")
		return
	}
	keyword := r.URL.Query().Get("keyword")
	out := h.service.SearchPorts(r.Context(), portType, keyword)
	httpx.JSON(w, http.StatusOK, emptyIfNil(out))
}

func (h *Handler) getPort(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid port id")
		return
	}
	port, ok := h.service.Catalog().PortByID(id)
	if !ok {
		httpx.RespondError(w, shared.ErrNotFound)
		return
	}
	httpx.JSON(w, http.StatusOK, port)
}

func (h *Handler) listContainerTypes(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ContainerTypes(r.Context())
	if err != nil {
		h.logger.Error("list container types", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, emptyIfNil(out))
}

func (h *Handler) listCnOffices(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.CnOffices(r.Context())
	if err != nil {
		h.logger.Error("list cn offices", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, emptyIfNil(out))
}

func (h *Handler) listCargoTypes(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.CargoTypes(r.Context())
	if err != nil {
		h.logger.Error("list cargo types", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, emptyIfNil(out))
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Products(r.Context())
	if err != nil {
		h.logger.Error("list products", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, emptyIfNil(out))
}

func (h *Handler) listUoms(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Uoms(r.Context())
	if err != nil {
		h.logger.Error("list uoms", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, emptyIfNil(out))
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.Categories(r.Context())
	if err != nil {
		h.logger.Error("list categories", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, emptyIfNil(out))
}

// emptyIfNil keeps empty lists rendering as [] instead of null.
func emptyIfNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
