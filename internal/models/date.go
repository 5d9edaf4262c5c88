package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date stored in a DATE column and exchanged as
// "YYYY-MM-DD" on the wire. Incoming JSON may also carry a full RFC 3339
// timestamp (the dashboard sends both); only the date part is kept.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	return d.parse(s)
}

func (d *Date) parse(s string) error {
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = NewDate(t)
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

// Value implements driver.Valuer so gorm can bind the column.
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

// Scan accepts whatever the driver hands back: postgres yields time.Time,
// sqlite may yield the stored text representation.
func (d *Date) Scan(v any) error {
	switch t := v.(type) {
	case nil:
		d.Time = time.Time{}
		return nil
	case time.Time:
		*d = NewDate(t)
		return nil
	case string:
		return d.scanText(t)
	case []byte:
		return d.scanText(string(t))
	default:
		return fmt.Errorf("cannot scan %T into Date", v)
	}
}

func (d *Date) scanText(s string) error {
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339, "2006-01-02 15:04:05-07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			*d = NewDate(t)
			return nil
		}
	}
	return fmt.Errorf("cannot scan %q into Date", s)
}
