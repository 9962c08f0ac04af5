package pkg

import "time"

// Link is a labeled URL attached to a reply.  Labels are fixed localized
// strings chosen by the router ("Подивитись відео", "Відкрити документ").
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ReplyPayload is what the transport sends back to the user for a single
// inbound message.  Degraded marks replies produced on a failure path
// (model unavailable, booking row not persisted); the user-visible text has
// already been substituted or softened, and Reason carries the cause for
// logging and tests.
type ReplyPayload struct {
	Text     string `json:"text"`
	Links    []Link `json:"links,omitempty"`
	Degraded bool   `json:"degraded,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// MessageRequest is the inbound message event as received over HTTP.
// Voice is true when the user sent a voice message instead of text.
type MessageRequest struct {
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
	Voice  bool   `json:"voice,omitempty"`
}

// VideoEntry is one row of the cached video catalog.  Entries are immutable
// once loaded; the catalog is an ordered sequence and lookups are
// first-match-wins.
type VideoEntry struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// EnrichedReply is the result of one model invocation after post-processing.
// Text has had the extracted document link removed if one was found.  Empty
// VideoLink/DocumentLink mean "absent".
type EnrichedReply struct {
	Text         string `json:"text"`
	VideoLink    string `json:"video_link,omitempty"`
	DocumentLink string `json:"document_link,omitempty"`
}

// BookingRecord holds the five fields collected by the booking wizard, in
// the order they are persisted.  Values are stored verbatim as the user
// typed them; Date and Time are not parsed or validated.
type BookingRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
}
