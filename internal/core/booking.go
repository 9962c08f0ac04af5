package core

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"pravobot/pkg"
)

// BookingSink persists a completed booking row.  The production
// implementation appends to the Postgres bookings table.
type BookingSink interface {
	AppendBooking(ctx context.Context, rec *pkg.BookingRecord) error
}

// BookingFlow is the five-field appointment wizard.  Each user message
// fills exactly one field, in fixed order; no field is validated or parsed.
// The caller (the router) holds the user's session lock for the duration of
// Start/Advance, so draft mutation and prompt selection are atomic with
// respect to concurrent messages from the same user.
type BookingFlow struct {
	sessions SessionStore
	sink     BookingSink
	logger   *slog.Logger
}

// NewBookingFlow constructs a booking wizard over the given store and sink.
func NewBookingFlow(sessions SessionStore, sink BookingSink, logger *slog.Logger) *BookingFlow {
	return &BookingFlow{sessions: sessions, sink: sink, logger: logger}
}

// Start opens a fresh booking session for the user and prompts for the
// first field.  Any previous session for the user is replaced.
func (f *BookingFlow) Start(userID int64) pkg.ReplyPayload {
	f.sessions.Put(userID, &Session{Mode: ModeBooking})
	return pkg.ReplyPayload{Text: PromptName}
}

// Advance stores the message text into the next unfilled field and returns
// the prompt for the field after it.  The fifth answer completes the flow:
// the confirmation is built, the row is handed to the sink, and the session
// is removed.  A sink failure never reaches the user as an error; the
// confirmation text is still returned, marked Degraded for observers.
func (f *BookingFlow) Advance(ctx context.Context, userID int64, text string) pkg.ReplyPayload {
	sess, ok := f.sessions.Get(userID)
	if !ok || sess.Mode != ModeBooking {
		return f.Start(userID)
	}
	switch sess.Draft.step {
	case stepName:
		sess.Draft.Name = text
		sess.Draft.step = stepSurname
		f.sessions.Put(userID, sess)
		return pkg.ReplyPayload{Text: PromptSurname}
	case stepSurname:
		sess.Draft.Surname = text
		sess.Draft.step = stepDate
		f.sessions.Put(userID, sess)
		return pkg.ReplyPayload{Text: PromptDate}
	case stepDate:
		sess.Draft.Date = text
		sess.Draft.step = stepTime
		f.sessions.Put(userID, sess)
		return pkg.ReplyPayload{Text: PromptTime}
	case stepTime:
		sess.Draft.Time = text
		sess.Draft.step = stepContact
		f.sessions.Put(userID, sess)
		return pkg.ReplyPayload{Text: PromptContact}
	default: // stepContact
		sess.Draft.Contact = text
		return f.complete(ctx, userID, &sess.Draft)
	}
}

func (f *BookingFlow) complete(ctx context.Context, userID int64, draft *BookingDraft) pkg.ReplyPayload {
	rec := &pkg.BookingRecord{
		ID:        uuid.NewString(),
		Name:      draft.Name,
		Surname:   draft.Surname,
		Date:      draft.Date,
		Time:      draft.Time,
		Contact:   draft.Contact,
		CreatedAt: time.Now(),
	}
	confirmation := fmt.Sprintf(confirmationFmt, rec.Name, rec.Surname, rec.Date, rec.Time, rec.Contact)
	err := f.sink.AppendBooking(ctx, rec)
	f.sessions.Remove(userID)
	if err != nil {
		f.logger.Error("booking row not persisted", "user_id", userID, "booking_id", rec.ID, "error", err)
		return pkg.ReplyPayload{Text: confirmation, Degraded: true, Reason: err.Error()}
	}
	f.logger.Info("booking recorded", "user_id", userID, "booking_id", rec.ID)
	return pkg.ReplyPayload{Text: confirmation}
}
