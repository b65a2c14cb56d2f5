package service

import (
	"context"
	"errors"
	"fmt"

	"moneyflow/internal/models"

	"go.uber.org/zap"
)

// ErrEntryNotFound is returned when the referenced entry has no store
// record. Update and delete fetch first and fail with this error rather
// than creating anything.
var ErrEntryNotFound = errors.New("entry not found")

// EntryStore is the persistence contract for ledger entries. The store
// assigns IDs and creation timestamps; GetByID returns (nil, nil) when
// the id is unknown.
type EntryStore interface {
	List(ctx context.Context) ([]*models.Entry, error)
	GetByID(ctx context.Context, id int64) (*models.Entry, error)
	Create(ctx context.Context, e *models.Entry) error
	Update(ctx context.Context, e *models.Entry) error
	Delete(ctx context.Context, id int64) error
}

type EntryService struct {
	store  EntryStore
	logger *zap.Logger
}

func NewEntryService(store EntryStore, logger *zap.Logger) *EntryService {
	return &EntryService{
		store:  store,
		logger: logger,
	}
}

func (s *EntryService) List(ctx context.Context) ([]*models.Entry, error) {
	return s.store.List(ctx)
}

func (s *EntryService) Get(ctx context.Context, id int64) (*models.Entry, error) {
	entry, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entry: %w", err)
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}

// Create validates the payload and persists a new entry. Nothing is
// written when any field fails validation.
func (s *EntryService) Create(ctx context.Context, in EntryInput) (*models.Entry, error) {
	normalized, verrs := ValidateEntryInput(in)
	if verrs != nil {
		return nil, verrs
	}

	entry := &models.Entry{
		Type:     normalized.Type,
		Amount:   normalized.Amount,
		Category: normalized.Category,
		Notes:    normalized.Notes,
		Date:     normalized.Date,
	}

	if err := s.store.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	s.logger.Info("Entry created",
		zap.Int64("id", entry.ID),
		zap.String("type", string(entry.Type)),
	)
	return entry, nil
}

// Update validates the payload first, then confirms the entry exists
// before rewriting it. Validation failures win over a missing record.
func (s *EntryService) Update(ctx context.Context, id int64, in EntryInput) (*models.Entry, error) {
	normalized, verrs := ValidateEntryInput(in)
	if verrs != nil {
		return nil, verrs
	}

	entry, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.Type = normalized.Type
	entry.Amount = normalized.Amount
	entry.Category = normalized.Category
	entry.Notes = normalized.Notes
	entry.Date = normalized.Date

	if err := s.store.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	s.logger.Info("Entry updated", zap.Int64("id", entry.ID))
	return entry, nil
}

// Delete confirms the entry exists before removing it.
func (s *EntryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	s.logger.Info("Entry deleted", zap.Int64("id", id))
	return nil
}
