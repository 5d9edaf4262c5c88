package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"path"
	"strconv"

	"gorm.io/gorm"

	"github.com/harsaa34/Greentiq-Task/httpx"
	"github.com/harsaa34/Greentiq-Task/internal/config"
	"github.com/harsaa34/Greentiq-Task/internal/models"
	"github.com/harsaa34/Greentiq-Task/internal/services"
)

// DealHandler exposes one deal table over HTTP. Entity feeds error tokens and
// log fields ("lead" -> failed_to_fetch_leads, lead_create_failed).
type DealHandler struct {
	Service *services.DealService
	Entity  string
}

func NewLeadHandler(conn *gorm.DB) *DealHandler {
	return &DealHandler{Service: services.NewDealService(conn, models.LeadsTable), Entity: "lead"}
}

func NewSaleHandler(conn *gorm.DB) *DealHandler {
	return &DealHandler{Service: services.NewDealService(conn, models.SalesTable), Entity: "sale"}
}

// List handles GET /<entity>s?page=&limit=&companyId=. Unparsable or
// non-positive params fall back to their defaults in the service.
func (h *DealHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := services.ListParams{}
	if n, err := strconv.Atoi(q.Get("page")); err == nil {
		p.Page = n
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil {
		p.Limit = n
	}
	if n, err := strconv.Atoi(q.Get("companyId")); err == nil && n > 0 {
		p.CompanyID = uint(n)
	}
	page, err := h.Service.List(p)
	if err != nil {
		config.LogError(config.GetLogger(), h.Entity+"s", "List", "paginated fetch", p, err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_fetch_"+h.Entity+"s", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, page)
}

// Get handles GET /<entity>s/{id}.
func (h *DealHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(path.Base(r.URL.Path))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	d, err := h.Service.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		config.LogError(config.GetLogger(), h.Entity+"s", "Get", "fetch by id", id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_fetch_"+h.Entity, nil)
		return
	}
	httpx.JSON(w, http.StatusOK, d)
}

// Create handles POST /<entity>s. The body is a partial record; validation
// rejects it before anything is written, defaults fill the rest.
func (h *DealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.DealFields
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	created, err := h.Service.Create(in)
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			httpx.JSONError(w, http.StatusBadRequest, "validation_failed", ve.Violations)
			return
		}
		config.LogError(config.GetLogger(), h.Entity+"s", "Create", "insert", in.SaleName, err)
		httpx.JSONError(w, http.StatusInternalServerError, h.Entity+"_create_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}
