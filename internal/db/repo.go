package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"pravobot/pkg"
)

// ErrPersistence wraps any failure to append a booking row.  The booking
// flow treats it as fire-and-forget: the user still gets the confirmation.
var ErrPersistence = errors.New("db: booking persistence failed")

// Repository wraps database operations for the append-only bookings table.
// The caller is responsible for managing the DB connection lifecycle.
type Repository struct {
	DB       *sql.DB
	Notifier *Notifier
	Logger   *slog.Logger
}

// NewRepository constructs a Repository from an existing sql.DB.  The
// notifier is optional; when present, each appended row publishes a
// notification for back-office listeners.
func NewRepository(db *sql.DB, notifier *Notifier, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{DB: db, Notifier: notifier, Logger: logger}
}

// AppendBooking inserts one booking row.  Rows are never updated or
// deleted.  The post-insert notification is best-effort: its failure is
// logged and does not fail the append.
func (r *Repository) AppendBooking(ctx context.Context, rec *pkg.BookingRecord) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO bookings (id, name, surname, visit_date, visit_time, contact, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID, rec.Name, rec.Surname, rec.Date, rec.Time, rec.Contact, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if r.Notifier != nil {
		if err := r.Notifier.BookingRecorded(ctx, rec.ID); err != nil {
			r.Logger.Warn("booking notification failed", "booking_id", rec.ID, "error", err)
		}
	}
	return nil
}
