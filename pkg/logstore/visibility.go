package logstore

// Visibility reports whether a presentation surface is currently active.
type Visibility int

const (
	Hidden Visibility = iota
	Shown
)

// String returns the string representation of a Visibility.
func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Shown:
		return "shown"
	default:
		return "unknown"
	}
}
