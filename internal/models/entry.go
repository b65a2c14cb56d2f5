package models

import "time"

// TimeLayout renders timestamps the way the web client expects them:
// ISO 8601 with millisecond precision, UTC ("2024-01-01T00:00:00.000Z").
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

type EntryType string

const (
	EntryTypeIncome  EntryType = "INCOME"
	EntryTypeExpense EntryType = "EXPENSE"
)

// Entry is a single income or expense record in the ledger. The store
// assigns ID and CreatedAt on insert and refreshes UpdatedAt on every
// update; the rest is set by the caller after validation.
type Entry struct {
	ID        int64     `db:"id"`
	Type      EntryType `db:"type"`
	Amount    float64   `db:"amount"`
	Category  string    `db:"category"`
	Notes     *string   `db:"notes"`
	Date      time.Time `db:"date"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
