package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/harsaa34/Greentiq-Task/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Company{}, &models.Lead{}, &models.Sale{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func TestValidateDeal(t *testing.T) {
	valid := models.DealFields{SaleName: "Enterprise Deal", Amount: 50000}
	if v := ValidateDeal(&valid, false); !v.Empty() {
		t.Fatalf("expected valid, got %v", v)
	}

	cases := []struct {
		name  string
		deal  models.DealFields
		field string
		code  string
	}{
		{"empty name", models.DealFields{SaleName: "", Amount: 100}, "sale_name", "required"},
		{"blank name", models.DealFields{SaleName: "   ", Amount: 100}, "sale_name", "required"},
		{"zero amount", models.DealFields{SaleName: "x", Amount: 0}, "amount", "invalid_amount"},
		{"negative amount", models.DealFields{SaleName: "x", Amount: -1}, "amount", "invalid_amount"},
		{"amount over cap", models.DealFields{SaleName: "x", Amount: 1000000000}, "amount", "invalid_amount"},
		{"percentage below range", models.DealFields{SaleName: "x", Amount: 1, StagePercentage: -1}, "stage_percentage", "out_of_range"},
		{"percentage above range", models.DealFields{SaleName: "x", Amount: 1, StagePercentage: 101}, "stage_percentage", "out_of_range"},
	}
	for _, tc := range cases {
		v := ValidateDeal(&tc.deal, false)
		if v[tc.field] != tc.code {
			t.Errorf("%s: got %v, want %s=%s", tc.name, v, tc.field, tc.code)
		}
	}

	// Boundary values that must pass.
	for _, d := range []models.DealFields{
		{SaleName: "x", Amount: 0.01},
		{SaleName: "x", Amount: models.MaxAmount},
		{SaleName: "x", Amount: 1, StagePercentage: 0},
		{SaleName: "x", Amount: 1, StagePercentage: 100},
	} {
		if v := ValidateDeal(&d, false); !v.Empty() {
			t.Errorf("expected %+v valid, got %v", d, v)
		}
	}
}

func TestValidateDealFormContext(t *testing.T) {
	d := models.DealFields{SaleName: "x", Amount: 1}
	if v := ValidateDeal(&d, false); !v.Empty() {
		t.Fatalf("storage context must not require next_activity_date: %v", v)
	}
	v := ValidateDeal(&d, true)
	if v["next_activity_date"] != "required" {
		t.Fatalf("form context must require next_activity_date: %v", v)
	}
}

func TestCreateAppliesDefaults(t *testing.T) {
	svc := NewDealService(setupTestDB(t), models.LeadsTable)
	created, err := svc.Create(models.DealFields{SaleName: "Enterprise Deal", Amount: 50000, CompanyID: 1})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected server-generated id")
	}
	if created.Status != models.StatusOpen {
		t.Errorf("status: got %q", created.Status)
	}
	if created.Stage != "Proposal" {
		t.Errorf("stage: got %q", created.Stage)
	}
	if created.StagePercentage != 0 {
		t.Errorf("stage_percentage: got %d", created.StagePercentage)
	}
	if created.Currency != "EUR" {
		t.Errorf("currency: got %q", created.Currency)
	}
	if created.SaleDate.Format(time.DateOnly) != time.Now().Format(time.DateOnly) {
		t.Errorf("sale_date: got %v", created.SaleDate)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
}

func TestCreateValidationWritesNothing(t *testing.T) {
	conn := setupTestDB(t)
	svc := NewDealService(conn, models.LeadsTable)
	_, err := svc.Create(models.DealFields{SaleName: "", Amount: 100})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Violations["sale_name"] != "required" {
		t.Fatalf("unexpected violations: %v", ve.Violations)
	}
	var count int64
	conn.Model(&models.Lead{}).Count(&count)
	if count != 0 {
		t.Fatalf("validation failure must not insert, found %d rows", count)
	}
}

func TestCreateIDsUniqueAndCreatedAtMonotonic(t *testing.T) {
	svc := NewDealService(setupTestDB(t), models.LeadsTable)
	seen := map[uint]bool{}
	var prev time.Time
	for i := 0; i < 5; i++ {
		created, err := svc.Create(models.DealFields{SaleName: fmt.Sprintf("Deal %d", i), Amount: 100})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if seen[created.ID] {
			t.Fatalf("duplicate id %d", created.ID)
		}
		seen[created.ID] = true
		if created.CreatedAt.Before(prev) {
			t.Fatalf("created_at went backwards: %v < %v", created.CreatedAt, prev)
		}
		prev = created.CreatedAt
	}
}

func TestListPagination(t *testing.T) {
	conn := setupTestDB(t)
	svc := NewDealService(conn, models.LeadsTable)
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 10; i++ {
		lead := models.Lead{DealFields: models.DealFields{
			SaleName:  fmt.Sprintf("Deal %02d", i),
			Amount:    1000,
			CompanyID: 1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}}
		lead.ApplyDefaults(base)
		if err := conn.Create(&lead).Error; err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}
	// A record for another company must never leak into company 1 pages.
	other := models.Lead{DealFields: models.DealFields{SaleName: "Other", Amount: 1, CompanyID: 2}}
	other.ApplyDefaults(base)
	if err := conn.Create(&other).Error; err != nil {
		t.Fatal(err)
	}

	page, err := svc.List(ListParams{Page: 2, Limit: 3, CompanyID: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Data) != 3 {
		t.Fatalf("expected 3 rows got %d", len(page.Data))
	}
	if page.Page != 2 || page.Limit != 3 {
		t.Fatalf("echo params wrong: %+v", page)
	}
	if page.Total != 10 {
		t.Fatalf("total: got %d", page.Total)
	}
	if page.TotalPages != 4 {
		t.Fatalf("totalPages: got %d", page.TotalPages)
	}
	// Newest first: page 2 of limit 3 starts at the 4th newest record.
	if page.Data[0].SaleName != "Deal 06" {
		t.Fatalf("ordering: got %q first", page.Data[0].SaleName)
	}
}

func TestListDefaultsAndCap(t *testing.T) {
	svc := NewDealService(setupTestDB(t), models.LeadsTable)

	page, err := svc.List(ListParams{})
	if err != nil {
		t.Fatal(err)
	}
	if page.Page != DefaultPage || page.Limit != DefaultPageSize {
		t.Fatalf("defaults: %+v", page)
	}
	if page.Total != 0 || page.TotalPages != 0 || len(page.Data) != 0 {
		t.Fatalf("empty table: %+v", page)
	}

	page, err = svc.List(ListParams{Page: -3, Limit: 100000})
	if err != nil {
		t.Fatal(err)
	}
	if page.Page != DefaultPage {
		t.Fatalf("negative page not defaulted: %d", page.Page)
	}
	if page.Limit != MaxPageSize {
		t.Fatalf("limit not capped: %d", page.Limit)
	}
}

func TestGet(t *testing.T) {
	svc := NewDealService(setupTestDB(t), models.LeadsTable)
	created, err := svc.Create(models.DealFields{SaleName: "Lookup", Amount: 42})
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Get(int(created.ID))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	again, err := svc.Get(int(created.ID))
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if got.SaleName != again.SaleName || got.Amount != again.Amount || got.ID != again.ID {
		t.Fatalf("repeated get differs: %+v vs %+v", got, again)
	}

	if _, err := svc.Get(999999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSalesTableIsIndependent(t *testing.T) {
	conn := setupTestDB(t)
	leads := NewDealService(conn, models.LeadsTable)
	sales := NewDealService(conn, models.SalesTable)

	if _, err := leads.Create(models.DealFields{SaleName: "Lead only", Amount: 10}); err != nil {
		t.Fatal(err)
	}
	page, err := sales.List(ListParams{})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 0 {
		t.Fatalf("lead leaked into sales: %+v", page)
	}
	if _, err := sales.Create(models.DealFields{SaleName: "Sale only", Amount: 20}); err != nil {
		t.Fatal(err)
	}
	page, err = sales.List(ListParams{})
	if err != nil {
		t.Fatal(err)
	}
	if page.Total != 1 || page.Data[0].SaleName != "Sale only" {
		t.Fatalf("unexpected sales page: %+v", page)
	}
}
