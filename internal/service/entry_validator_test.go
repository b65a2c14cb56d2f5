package service

import (
	"testing"
	"time"

	"moneyflow/internal/models"
)

func strptr(s string) *string { return &s }

func validInput() EntryInput {
	return EntryInput{
		Type:     "INCOME",
		Amount:   "100",
		Category: "Salary",
		Date:     "2024-01-01T00:00:00Z",
	}
}

func TestValidateEntryInput_Valid(t *testing.T) {
	in := validInput()
	in.Notes = strptr("  monthly pay  ")

	out, errs := ValidateEntryInput(in)
	if errs != nil {
		t.Fatalf("ValidateEntryInput() errs = %v, want nil", errs)
	}

	if out.Type != models.EntryTypeIncome {
		t.Errorf("Type = %q, want INCOME", out.Type)
	}
	if out.Amount != 100 {
		t.Errorf("Amount = %v, want 100", out.Amount)
	}
	if out.Category != "Salary" {
		t.Errorf("Category = %q, want Salary", out.Category)
	}
	if out.Notes == nil || *out.Notes != "monthly pay" {
		t.Errorf("Notes = %v, want trimmed 'monthly pay'", out.Notes)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !out.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", out.Date, want)
	}
}

func TestValidateEntryInput_NotesOptional(t *testing.T) {
	out, errs := ValidateEntryInput(validInput())
	if errs != nil {
		t.Fatalf("ValidateEntryInput() errs = %v, want nil", errs)
	}
	if out.Notes != nil {
		t.Errorf("Notes = %v, want nil for absent notes", out.Notes)
	}
}

func TestValidateEntryInput_CategoryEscaped(t *testing.T) {
	in := validInput()
	in.Category = `<b>Food & "Drinks"</b>`

	out, errs := ValidateEntryInput(in)
	if errs != nil {
		t.Fatalf("ValidateEntryInput() errs = %v, want nil", errs)
	}
	want := "&lt;b&gt;Food &amp; &#34;Drinks&#34;&lt;/b&gt;"
	if out.Category != want {
		t.Errorf("Category = %q, want %q", out.Category, want)
	}
}

func TestValidateEntryInput_DateLayouts(t *testing.T) {
	for _, date := range []string{
		"2024-01-01T00:00:00Z",
		"2024-01-01T10:30:00+02:00",
		"2024-01-01T10:30:00",
		"2024-01-01",
	} {
		in := validInput()
		in.Date = date
		if _, errs := ValidateEntryInput(in); errs != nil {
			t.Errorf("ValidateEntryInput(date=%q) errs = %v, want nil", date, errs)
		}
	}
}

func TestValidateEntryInput_SingleFieldFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*EntryInput)
		path    string
		wantMsg string
	}{
		{"empty type", func(in *EntryInput) { in.Type = "  " }, "type", "Type must not be empty."},
		{"unknown type", func(in *EntryInput) { in.Type = "income" }, "type", "Type must be either INCOME or EXPENSE."},
		{"empty amount", func(in *EntryInput) { in.Amount = "" }, "amount", "Amount must not be empty."},
		{"zero amount", func(in *EntryInput) { in.Amount = "0" }, "amount", "Amount must be a positive number."},
		{"negative amount", func(in *EntryInput) { in.Amount = "-12.5" }, "amount", "Amount must be a positive number."},
		{"non-numeric amount", func(in *EntryInput) { in.Amount = "lots" }, "amount", "Amount must be a positive number."},
		{"NaN amount", func(in *EntryInput) { in.Amount = "NaN" }, "amount", "Amount must be a positive number."},
		{"empty category", func(in *EntryInput) { in.Category = "   " }, "category", "Category must not be empty."},
		{"empty date", func(in *EntryInput) { in.Date = "" }, "date", "Date must not be empty."},
		{"malformed date", func(in *EntryInput) { in.Date = "01/01/2024" }, "date", "Invalid value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			out, errs := ValidateEntryInput(in)
			if out != nil {
				t.Fatalf("ValidateEntryInput() out = %+v, want nil", out)
			}
			if len(errs) != 1 {
				t.Fatalf("ValidateEntryInput() errs = %v, want exactly 1", errs)
			}
			if errs[0].Msg != tt.wantMsg {
				t.Errorf("Msg = %q, want %q", errs[0].Msg, tt.wantMsg)
			}
			if errs[0].Path != tt.path {
				t.Errorf("Path = %q, want %q", errs[0].Path, tt.path)
			}
			if errs[0].Location != "body" {
				t.Errorf("Location = %q, want body", errs[0].Location)
			}
		})
	}
}

func TestValidateEntryInput_CollectsAllFailuresInOrder(t *testing.T) {
	in := EntryInput{
		Type:     "SAVINGS",
		Amount:   "-1",
		Category: "",
		Date:     "not-a-date",
	}

	out, errs := ValidateEntryInput(in)
	if out != nil {
		t.Fatalf("ValidateEntryInput() out = %+v, want nil", out)
	}

	wantPaths := []string{"type", "amount", "category", "date"}
	if len(errs) != len(wantPaths) {
		t.Fatalf("got %d errors %v, want %d", len(errs), errs, len(wantPaths))
	}
	for i, path := range wantPaths {
		if errs[i].Path != path {
			t.Errorf("errs[%d].Path = %q, want %q", i, errs[i].Path, path)
		}
	}
}
