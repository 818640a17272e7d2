package types

// TouchAction represents a single action in a touch sequence.
// Used by the overlay editing API (down/move/up with a pointer id).
type TouchAction struct {
	Type      string  `json:"type"`
	PointerID int     `json:"pointerId"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}
