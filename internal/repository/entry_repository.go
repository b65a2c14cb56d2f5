package repository

import (
	"context"
	"errors"
	"time"

	"moneyflow/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var entryColumns = []string{"id", "type", "amount", "category", "notes", "date", "created_at", "updated_at"}

type EntryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewEntryRepository(db *pgxpool.Pool, logger *zap.Logger) *EntryRepository {
	return &EntryRepository{
		db:     db,
		logger: logger,
	}
}

// List returns all entries ordered ascending by creation time, the order
// the context assembler expects them in.
func (r *EntryRepository) List(ctx context.Context) ([]*models.Entry, error) {
	query := squirrel.Select(entryColumns...).
		From("entries").
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.Entry
	for rows.Next() {
		var e models.Entry
		if err := rows.Scan(
			&e.ID, &e.Type, &e.Amount, &e.Category, &e.Notes, &e.Date, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

// GetByID returns (nil, nil) when no entry has the given id.
func (r *EntryRepository) GetByID(ctx context.Context, id int64) (*models.Entry, error) {
	query := squirrel.Select(entryColumns...).
		From("entries").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var e models.Entry
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&e.ID, &e.Type, &e.Amount, &e.Category, &e.Notes, &e.Date, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &e, nil
}

// Create inserts the entry and fills in ID, CreatedAt and UpdatedAt.
func (r *EntryRepository) Create(ctx context.Context, e *models.Entry) error {
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	query := squirrel.Insert("entries").
		Columns("type", "amount", "category", "notes", "date", "created_at", "updated_at").
		Values(e.Type, e.Amount, e.Category, e.Notes, e.Date, e.CreatedAt, e.UpdatedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, sql, args...).Scan(&e.ID)
}

// Update rewrites the mutable fields of an existing entry and refreshes
// UpdatedAt. CreatedAt is never touched.
func (r *EntryRepository) Update(ctx context.Context, e *models.Entry) error {
	e.UpdatedAt = time.Now().UTC()

	query := squirrel.Update("entries").
		Set("type", e.Type).
		Set("amount", e.Amount).
		Set("category", e.Category).
		Set("notes", e.Notes).
		Set("date", e.Date).
		Set("updated_at", e.UpdatedAt).
		Where(squirrel.Eq{"id": e.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *EntryRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("entries").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
