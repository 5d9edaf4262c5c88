package db

import (
	"time"

	"gorm.io/gorm"

	"github.com/harsaa34/Greentiq-Task/internal/config"
	"github.com/harsaa34/Greentiq-Task/internal/models"
)

// Seed installs the default company and the showcase deals the dashboard
// ships with. Safe to run repeatedly: each table is only filled when empty.
func Seed(conn *gorm.DB) {
	seedCompany(conn)
	seedDeals(conn, models.LeadsTable)
	seedDeals(conn, models.SalesTable)
}

func seedCompany(conn *gorm.DB) {
	var existing models.Company
	err := conn.First(&existing, models.DefaultCompanyID).Error
	if err == nil {
		return
	}
	if err != gorm.ErrRecordNotFound {
		config.LogError(config.GetLogger(), "db", "seedCompany", "lookup default company", nil, err)
		return
	}
	company := models.Company{
		ID:         models.DefaultCompanyID,
		Name:       models.DefaultCompanyName,
		Department: "Department Stockholm",
		Address:    "Västgötagatan 5, 102 61 Stockholm",
		Country:    "Sweden",
		Phone:      "+46 800 193 2820",
		Email:      "info@sc.se",
		Website:    "www.sc.se",
		Category:   "Customer A",
		Code:       "SUPERCO",
		Number:     "2002",
		VAT:        "SE123456789",
		Business:   "IT",
	}
	if err := conn.Create(&company).Error; err != nil {
		config.LogError(config.GetLogger(), "db", "seedCompany", "create default company", nil, err)
	}
}

func seedDeals(conn *gorm.DB, table string) {
	var count int64
	if err := conn.Table(table).Count(&count).Error; err != nil {
		config.LogError(config.GetLogger(), "db", "seedDeals", "count "+table, nil, err)
		return
	}
	if count > 0 {
		return
	}
	for _, d := range sampleDeals() {
		d.ApplyDefaults(time.Now())
		if err := conn.Table(table).Create(&d).Error; err != nil {
			config.LogError(config.GetLogger(), "db", "seedDeals", "insert into "+table, d.SaleName, err)
			return
		}
	}
	config.GetLogger().WithField("table", table).Info("seeded sample deals")
}

func sampleDeals() []models.DealFields {
	return []models.DealFields{
		{SaleName: "Enterprise Software License", Status: models.StatusOpen, Amount: 50000, Stage: "Proposal", StagePercentage: 60, SaleDate: mustDate("2024-01-15"), NextActivityDate: datePtr("2024-01-30")},
		{SaleName: "Cloud Migration Project", Status: models.StatusSold, Amount: 120000, Stage: "Closed Won", StagePercentage: 100, SaleDate: mustDate("2024-01-10"), NextActivityDate: datePtr("2024-02-15")},
		{SaleName: "Consulting Services", Status: models.StatusStalled, Amount: 25000, Stage: "Negotiation", StagePercentage: 40, SaleDate: mustDate("2024-01-05"), NextActivityDate: datePtr("2024-01-20")},
		{SaleName: "Annual Support Contract", Status: models.StatusOpen, Amount: 75000, Stage: "Qualification", StagePercentage: 30, SaleDate: mustDate("2024-01-18"), NextActivityDate: datePtr("2024-02-01")},
		{SaleName: "Hardware Upgrade", Status: models.StatusLost, Amount: 45000, Stage: "Closed Lost", StagePercentage: 100, SaleDate: mustDate("2023-12-20"), NextActivityDate: datePtr("2024-01-05")},
		{SaleName: "Training Program", Status: models.StatusOpen, Amount: 18000, Stage: "Discovery", StagePercentage: 20, SaleDate: mustDate("2024-01-20"), NextActivityDate: datePtr("2024-02-05")},
		{SaleName: "API Integration", Status: models.StatusSold, Amount: 35000, Stage: "Closed Won", StagePercentage: 100, SaleDate: mustDate("2024-01-12"), NextActivityDate: datePtr("2024-01-25")},
		{SaleName: "Security Audit", Status: models.StatusOpen, Amount: 42000, Stage: "Qualification", StagePercentage: 35, SaleDate: mustDate("2024-01-22"), NextActivityDate: datePtr("2024-02-10")},
		{SaleName: "Mobile App Development", Status: models.StatusStalled, Amount: 85000, Stage: "Negotiation", StagePercentage: 55, SaleDate: mustDate("2024-01-08"), NextActivityDate: datePtr("2024-01-25")},
		{SaleName: "Data Analytics Platform", Status: models.StatusOpen, Amount: 95000, Stage: "Proposal", StagePercentage: 65, SaleDate: mustDate("2024-01-25"), NextActivityDate: datePtr("2024-02-15")},
	}
}

func mustDate(s string) models.Date {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return models.NewDate(t)
}

func datePtr(s string) *models.Date {
	d := mustDate(s)
	return &d
}
