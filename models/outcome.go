package models

// Outcome status values returned to the frontend.
const (
	StatusConfirmed = "confirmed"
	StatusSuggest   = "suggest"
	StatusError     = "error"
)

// BookingOutcome is the single response contract of the scheduling pipeline.
// Exactly one variant is populated per request:
//   - Confirmed: Title/Summary/Start/End/Link set.
//   - Suggest: Suggestions set.
//   - Booking error (past slot, slot full): BookingError set, Suggestions attached.
//   - Generic error: Err set.
//
// BookingError serializes under the upper-case "ERROR" key — the frontend
// keys off that casing to render retry suggestions, so it stays as is.
type BookingOutcome struct {
	Status       string `json:"status"`
	Title        string `json:"title,omitempty"`
	Summary      string `json:"summary,omitempty"`
	Start        string `json:"start,omitempty"`
	End          string `json:"end,omitempty"`
	Link         string `json:"link,omitempty"`
	Suggestions  string `json:"suggestions,omitempty"`
	BookingError string `json:"ERROR,omitempty"`
	Err          string `json:"error,omitempty"`
}

// ConfirmedOutcome builds the success variant.
func ConfirmedOutcome(title, summary, start, end, link string) BookingOutcome {
	return BookingOutcome{
		Status:  StatusConfirmed,
		Title:   title,
		Summary: summary,
		Start:   start,
		End:     end,
		Link:    link,
	}
}

// SuggestOutcome builds the suggestion variant.
func SuggestOutcome(suggestions string) BookingOutcome {
	return BookingOutcome{
		Status:      StatusSuggest,
		Suggestions: suggestions,
	}
}

// RejectedOutcome builds the booking-rejection variant (time passed or slot
// full), with alternative slots attached so the user can retry immediately.
func RejectedOutcome(message, suggestions string) BookingOutcome {
	return BookingOutcome{
		Status:       StatusError,
		BookingError: message,
		Suggestions:  suggestions,
	}
}

// ErrorOutcome builds the generic error variant.
func ErrorOutcome(message string) BookingOutcome {
	return BookingOutcome{
		Status: StatusError,
		Err:    message,
	}
}
