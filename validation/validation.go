// Package validation collects field-level checks into a Violations map so a
// whole candidate record can be reported back in one response. Validators are
// pure; the first failing rule for a field wins.
package validation

import (
	"strings"
	"unicode/utf8"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Required flags empty or whitespace-only values.
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

// MaxLen flags values longer than maxLen characters (runes, not bytes).
func MaxLen(field, value string, maxLen int, v Violations) {
	if _, seen := v[field]; seen {
		return
	}
	if utf8.RuneCountInString(value) > maxLen {
		v[field] = "too_long"
	}
}

// AmountRange flags monetary values outside (0, maxVal].
func AmountRange(field string, val, maxVal float64, v Violations) {
	if _, seen := v[field]; seen {
		return
	}
	if val <= 0 || val > maxVal {
		v[field] = "invalid_amount"
	}
}

// IntRange flags integers outside [minVal, maxVal].
func IntRange(field string, val, minVal, maxVal int, v Violations) {
	if _, seen := v[field]; seen {
		return
	}
	if val < minVal || val > maxVal {
		v[field] = "out_of_range"
	}
}
