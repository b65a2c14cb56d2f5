package service

import (
	"html"
	"math"
	"strconv"
	"strings"
	"time"

	"moneyflow/internal/dto"
	"moneyflow/internal/models"
)

// EntryInput is a candidate entry payload with every field still in its
// raw string form.
type EntryInput struct {
	Type     string
	Amount   string
	Category string
	Notes    *string
	Date     string
}

// NewEntry is the normalized result of a successful validation pass.
type NewEntry struct {
	Type     models.EntryType
	Amount   float64
	Category string
	Notes    *string
	Date     time.Time
}

// Accepted date layouts, most specific first. The client sends full
// RFC 3339 timestamps but a bare calendar date is also valid input.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ValidateEntryInput checks every field independently and reports all
// applicable failures together in field declaration order; it never stops
// at the first bad field. On success it returns the normalized record
// with the category HTML-escaped for storage.
func ValidateEntryInput(in EntryInput) (*NewEntry, dto.ValidationErrors) {
	var errs dto.ValidationErrors
	out := &NewEntry{}

	entryType := strings.TrimSpace(in.Type)
	switch {
	case entryType == "":
		errs = append(errs, dto.NewFieldError("type", in.Type, "Type must not be empty."))
	case entryType != string(models.EntryTypeIncome) && entryType != string(models.EntryTypeExpense):
		errs = append(errs, dto.NewFieldError("type", in.Type, "Type must be either INCOME or EXPENSE."))
	default:
		out.Type = models.EntryType(entryType)
	}

	if strings.TrimSpace(in.Amount) == "" {
		errs = append(errs, dto.NewFieldError("amount", in.Amount, "Amount must not be empty."))
	} else {
		amount, err := strconv.ParseFloat(strings.TrimSpace(in.Amount), 64)
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
			errs = append(errs, dto.NewFieldError("amount", in.Amount, "Amount must be a positive number."))
		} else {
			out.Amount = amount
		}
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		errs = append(errs, dto.NewFieldError("category", in.Category, "Category must not be empty."))
	} else {
		out.Category = html.EscapeString(category)
	}

	if in.Notes != nil {
		trimmed := strings.TrimSpace(*in.Notes)
		out.Notes = &trimmed
	}

	if strings.TrimSpace(in.Date) == "" {
		errs = append(errs, dto.NewFieldError("date", in.Date, "Date must not be empty."))
	} else if date, ok := parseDate(strings.TrimSpace(in.Date)); ok {
		out.Date = date
	} else {
		errs = append(errs, dto.NewFieldError("date", in.Date, "Invalid value"))
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
