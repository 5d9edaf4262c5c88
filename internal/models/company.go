package models

import "time"

// Company is the reference entity deals are scoped by. It only labels the
// dashboard's company card; the API never creates or updates companies, and a
// default one (id=1) is seeded so records without an explicit company_id have
// a home.
type Company struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Department string    `gorm:"size:255" json:"department,omitempty"`
	Address    string    `gorm:"size:255" json:"address,omitempty"`
	Country    string    `gorm:"size:100" json:"country,omitempty"`
	Phone      string    `gorm:"size:50" json:"phone,omitempty"`
	Email      string    `gorm:"size:255" json:"email,omitempty"`
	Website    string    `gorm:"size:255" json:"website,omitempty"`
	Category   string    `gorm:"size:100" json:"category,omitempty"`
	Code       string    `gorm:"size:50" json:"code,omitempty"`
	Number     string    `gorm:"size:50" json:"number,omitempty"`
	VAT        string    `gorm:"column:vat;size:50" json:"vat,omitempty"`
	Business   string    `gorm:"size:100" json:"business,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Company) TableName() string { return "companies" }
