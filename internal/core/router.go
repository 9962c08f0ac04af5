package core

import (
	"context"
	"log/slog"
	"strings"

	"pravobot/pkg"
)

// Router is the top-level dispatcher for inbound message events.  It owns
// the decision between continuing an open flow, starting the booking
// wizard, and answering through the assistant pipelines.
type Router struct {
	sessions  SessionStore
	booking   *BookingFlow
	assistant *Assistant
	logger    *slog.Logger
}

// NewRouter wires the dispatcher.
func NewRouter(sessions SessionStore, booking *BookingFlow, assistant *Assistant, logger *slog.Logger) *Router {
	return &Router{sessions: sessions, booking: booking, assistant: assistant, logger: logger}
}

// Route handles one inbound message end to end and returns the reply
// payload.  The whole turn runs inside the user's critical section, so two
// concurrent messages from the same user cannot interleave their session
// reads and writes; messages from different users proceed in parallel.
func (r *Router) Route(ctx context.Context, userID int64, text string, hasVoice bool) pkg.ReplyPayload {
	release := r.sessions.Acquire(userID)
	defer release()

	if sess, ok := r.sessions.Get(userID); ok {
		switch sess.Mode {
		case ModeCourtQuery:
			reply, err := r.assistant.CourtAnswer(ctx, text)
			// The session is cleared even when the model call failed.
			r.sessions.Remove(userID)
			return r.assemble(reply, err)
		case ModeBooking:
			return r.booking.Advance(ctx, userID, text)
		}
	}

	if hasVoice {
		return pkg.ReplyPayload{Text: ReplyVoice}
	}

	switch strings.TrimSpace(text) {
	case MenuBooking:
		return r.booking.Start(userID)
	case MenuCourt:
		r.sessions.Put(userID, &Session{Mode: ModeCourtQuery})
		return pkg.ReplyPayload{Text: ReplyCourtEntry}
	case MenuConsultation:
		return pkg.ReplyPayload{Text: ReplyConsultation}
	case MenuSpecialist:
		return pkg.ReplyPayload{Text: ReplySpecialist}
	}

	if DetectsBookingIntent(text) {
		return r.booking.Start(userID)
	}

	r.logger.Info("question received", "user_id", userID)
	reply, err := r.assistant.Answer(ctx, text)
	return r.assemble(reply, err)
}

// assemble turns an enriched reply into the transport payload, attaching
// the labeled link buttons.  A failed model call yields the apology text
// with no links, flagged as degraded.
func (r *Router) assemble(reply pkg.EnrichedReply, err error) pkg.ReplyPayload {
	if err != nil {
		return pkg.ReplyPayload{Text: reply.Text, Degraded: true, Reason: err.Error()}
	}
	p := pkg.ReplyPayload{Text: reply.Text}
	if reply.VideoLink != "" {
		p.Links = append(p.Links, pkg.Link{Label: LabelWatchVideo, URL: reply.VideoLink})
	}
	if reply.DocumentLink != "" {
		p.Links = append(p.Links, pkg.Link{Label: LabelOpenDocument, URL: reply.DocumentLink})
	}
	return p
}
