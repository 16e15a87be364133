package gesture

import "github.com/gdamore/tcell/v2"

// KeyBinding recognizes a single key press.
// For tcell.KeyRune bindings Rune must match as well. Modifiers are only
// checked when non-zero.
type KeyBinding struct {
	Key       tcell.Key
	Rune      rune
	Modifiers tcell.ModMask
}

// Recognize implements Recognizer.
func (b KeyBinding) Recognize(ev tcell.Event, _, _ int) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	if key.Key() != b.Key {
		return false
	}
	if b.Key == tcell.KeyRune && key.Rune() != b.Rune {
		return false
	}
	if b.Modifiers != 0 && key.Modifiers()&b.Modifiers != b.Modifiers {
		return false
	}
	return true
}

func (b KeyBinding) String() string {
	if b.Key != tcell.KeyRune {
		if name, ok := tcell.KeyNames[b.Key]; ok {
			return name
		}
		return "unknown key"
	}
	if b.Modifiers&tcell.ModAlt != 0 {
		return "Alt+" + string(b.Rune)
	}
	return string(b.Rune)
}
