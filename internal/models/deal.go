package models

import "time"

// Deal statuses offered by the dashboard. The column is free text; these are
// the labels the UI writes.
const (
	StatusOpen    = "Open"
	StatusLost    = "Lost"
	StatusSold    = "Sold"
	StatusStalled = "Stalled"
)

// Fallbacks applied uniformly at creation time. Every optional field gets its
// default here and nowhere else.
const (
	DefaultStatus      = StatusOpen
	DefaultStage       = "Proposal"
	DefaultCompanyID   = uint(1)
	DefaultCompanyName = "SuperCompany Ltd ASA"
	DefaultOwner       = "John Doe"
	DefaultCurrency    = "EUR"
)

// MaxAmount is the upper bound a deal amount may take.
const MaxAmount = 999999999.99

// MaxSaleNameLen bounds the sale_name column.
const MaxSaleNameLen = 100

// DealFields is the column set shared by the leads and sales tables. Lead and
// Sale embed it so one service can serve both; the tables are deliberately
// near-duplicates of each other.
type DealFields struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	SaleName        string  `gorm:"size:255;not null" json:"sale_name"`
	Status          string  `gorm:"size:50;not null;default:'Open'" json:"status"`
	Amount          float64 `gorm:"type:decimal(12,2);not null" json:"amount"`
	Stage           string  `gorm:"size:100;not null;default:'Proposal'" json:"stage"`
	StagePercentage int     `gorm:"not null;default:0" json:"stage_percentage"`
	SaleDate        Date    `gorm:"type:date" json:"sale_date"`
	// Required by the creation form, nullable in storage.
	NextActivityDate *Date     `gorm:"type:date" json:"next_activity_date"`
	CompanyID        uint      `gorm:"not null;default:1;index" json:"company_id"`
	CompanyName      string    `gorm:"size:255" json:"company_name"`
	Owner            string    `gorm:"size:100" json:"owner"`
	Currency         string    `gorm:"size:10;not null;default:'EUR'" json:"currency"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
}

// ApplyDefaults fills every optional field that was left empty. sale_date
// falls back to the current date; id and created_at remain server-generated.
func (d *DealFields) ApplyDefaults(now time.Time) {
	if d.Status == "" {
		d.Status = DefaultStatus
	}
	if d.Stage == "" {
		d.Stage = DefaultStage
	}
	if d.SaleDate.IsZero() {
		d.SaleDate = NewDate(now)
	}
	if d.CompanyID == 0 {
		d.CompanyID = DefaultCompanyID
	}
	if d.CompanyName == "" {
		d.CompanyName = DefaultCompanyName
	}
	if d.Owner == "" {
		d.Owner = DefaultOwner
	}
	if d.Currency == "" {
		d.Currency = DefaultCurrency
	}
}

type Lead struct {
	DealFields
}

func (Lead) TableName() string { return "leads" }

type Sale struct {
	DealFields
}

func (Sale) TableName() string { return "sales" }

// Table names used by the generic deal service.
const (
	LeadsTable = "leads"
	SalesTable = "sales"
)
