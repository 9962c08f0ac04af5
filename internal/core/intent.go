package core

import "strings"

// bookingPhrases are the canonical ways users ask to book an appointment.
// Matching is plain case-insensitive substring containment: multi-word
// phrases must appear contiguously, and there is no negation handling
// ("не хочу записатися" still matches).
var bookingPhrases = []string{
	"записатися на прийом",
	"записатися на візит",
	"хочу записатися",
	"потрібно записатися",
	"запишіть мене",
	"хочу прийти на прийом",
	"мені потрібно до лікаря",
}

// courtMarker flags free-text questions about court decisions.
const courtMarker = "судові рішення"

// DetectsBookingIntent reports whether the message expresses a wish to
// start the booking flow.
func DetectsBookingIntent(text string) bool {
	t := strings.ToLower(text)
	for _, phrase := range bookingPhrases {
		if strings.Contains(t, phrase) {
			return true
		}
	}
	return false
}

// MentionsCourtDecisions reports whether the message concerns case-law
// lookups and should get the court prompt variant.
func MentionsCourtDecisions(text string) bool {
	return strings.Contains(strings.ToLower(text), courtMarker)
}
