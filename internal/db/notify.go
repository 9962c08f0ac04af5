package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// Notifier publishes booking events over the Postgres NOTIFY mechanism so a
// back-office process can LISTEN for new appointments without polling the
// bookings table.
type Notifier struct {
	DB      *sql.DB
	Channel string
}

// NewNotifier constructs a Notifier.  The channel should match the
// BOOKING_NOTIFY_CHANNEL environment variable on the listening side.
func NewNotifier(db *sql.DB, channel string) *Notifier {
	return &Notifier{DB: db, Channel: channel}
}

// BookingRecorded sends a notification carrying the booking ID.
func (n *Notifier) BookingRecorded(ctx context.Context, bookingID string) error {
	_, err := n.DB.ExecContext(ctx,
		fmt.Sprintf("NOTIFY %s, %s", pq.QuoteIdentifier(n.Channel), pq.QuoteLiteral(bookingID)))
	return err
}
