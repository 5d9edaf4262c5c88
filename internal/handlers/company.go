package handlers

import (
	"errors"
	"net/http"
	"path"
	"strconv"

	"gorm.io/gorm"

	"github.com/harsaa34/Greentiq-Task/httpx"
	"github.com/harsaa34/Greentiq-Task/internal/config"
	"github.com/harsaa34/Greentiq-Task/internal/models"
)

// CompanyHandler serves the read-only company reference records behind the
// dashboard's company card. Companies are seeded, never created via the API.
type CompanyHandler struct {
	DB *gorm.DB
}

func NewCompanyHandler(conn *gorm.DB) *CompanyHandler { return &CompanyHandler{DB: conn} }

// Get handles GET /companies/{id}.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(path.Base(r.URL.Path))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var company models.Company
	if err := h.DB.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		config.LogError(config.GetLogger(), "companies", "Get", "fetch by id", id, err)
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_fetch_company", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, company)
}
