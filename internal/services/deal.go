// Package services owns the deal business operations: pagination arithmetic,
// the canonical validation ruleset, and default substitution. Handlers stay
// transport-only.
package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/harsaa34/Greentiq-Task/internal/models"
	"github.com/harsaa34/Greentiq-Task/validation"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	// MaxPageSize caps client-supplied limits.
	MaxPageSize = 100
)

// ErrNotFound is returned when a lookup matches zero rows.
var ErrNotFound = errors.New("not_found")

// ValidationError carries the per-field violations of a rejected candidate.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string { return "validation_failed" }

// DealService serves one of the two deal tables. Leads and sales share the
// column set, so the same service backs both with just the table name swapped.
type DealService struct {
	DB    *gorm.DB
	Table string
}

func NewDealService(conn *gorm.DB, table string) *DealService {
	return &DealService{DB: conn, Table: table}
}

type ListParams struct {
	Page      int
	Limit     int
	CompanyID uint
}

// DealPage is the pagination envelope the dashboard consumes.
type DealPage struct {
	Data       []models.DealFields `json:"data"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	Total      int64               `json:"total"`
	TotalPages int                 `json:"totalPages"`
}

// ValidateDeal applies the canonical ruleset. The creation form additionally
// requires next_activity_date; storage accepts its absence, so the server
// validates with formContext=false.
func ValidateDeal(d *models.DealFields, formContext bool) validation.Violations {
	v := validation.Violations{}
	validation.Required("sale_name", d.SaleName, v)
	validation.MaxLen("sale_name", d.SaleName, models.MaxSaleNameLen, v)
	validation.AmountRange("amount", d.Amount, models.MaxAmount, v)
	validation.IntRange("stage_percentage", d.StagePercentage, 0, 100, v)
	if formContext && d.NextActivityDate == nil {
		v["next_activity_date"] = "required"
	}
	return v
}

// List returns one page of deals for a company, newest first. Count and rows
// are two independent reads; under concurrent writes the total may disagree
// with the page, which is accepted behavior.
func (s *DealService) List(p ListParams) (*DealPage, error) {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.CompanyID == 0 {
		p.CompanyID = models.DefaultCompanyID
	}
	offset := (p.Page - 1) * p.Limit

	var total int64
	if err := s.DB.Table(s.Table).Where("company_id = ?", p.CompanyID).Count(&total).Error; err != nil {
		return nil, err
	}
	rows := make([]models.DealFields, 0, p.Limit)
	if err := s.DB.Table(s.Table).
		Where("company_id = ?", p.CompanyID).
		Order("created_at DESC").
		Limit(p.Limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	totalPages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return &DealPage{Data: rows, Page: p.Page, Limit: p.Limit, Total: total, TotalPages: totalPages}, nil
}

// Get fetches a single deal by id. Ids are unique, so at most one row matches.
func (s *DealService) Get(id int) (*models.DealFields, error) {
	var d models.DealFields
	if err := s.DB.Table(s.Table).First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

// Create validates the candidate, applies defaults, and inserts exactly one
// row. Nothing is written when validation fails.
func (s *DealService) Create(in models.DealFields) (*models.DealFields, error) {
	if v := ValidateDeal(&in, false); !v.Empty() {
		return nil, &ValidationError{Violations: v}
	}
	now := time.Now()
	in.ID = 0 // server-generated, regardless of what the client sent
	in.CreatedAt = now
	in.ApplyDefaults(now)
	if err := s.DB.Table(s.Table).Create(&in).Error; err != nil {
		return nil, err
	}
	return &in, nil
}
