package game

import "unicode"

// EventKind classifies one unit of player input.
type EventKind int

const (
	EventNone EventKind = iota
	EventUp
	EventDown
	EventRight
	EventLeft
	EventLetter
	EventDelete
)

func (k EventKind) String() string {
	switch k {
	case EventUp:
		return "up"
	case EventDown:
		return "down"
	case EventRight:
		return "right"
	case EventLeft:
		return "left"
	case EventLetter:
		return "letter"
	case EventDelete:
		return "delete"
	default:
		return "none"
	}
}

// Event is a decoded input event. Letter is set for EventLetter only.
type Event struct {
	Kind   EventKind
	Letter rune
}

// LetterEvent returns an EventLetter for r, or an EventNone when r is not
// an ASCII letter.
func LetterEvent(r rune) Event {
	if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return Event{Kind: EventLetter, Letter: unicode.ToUpper(r)}
	}
	return Event{}
}
