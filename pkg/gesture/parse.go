package gesture

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

var namedKeys = map[string]tcell.Key{
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"enter":     tcell.KeyEnter,
	"backspace": tcell.KeyBackspace2,
	"insert":    tcell.KeyInsert,
	"delete":    tcell.KeyDelete,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
}

// Parse turns a trigger description into a Recognizer.
//
// Accepted forms:
//
//	edge-swipe               swipe in from the right edge
//	edge-swipe:left          swipe in from the given edge (left, right, top, bottom)
//	key:ctrl+l               control + letter
//	key:alt+x                alt + printable character
//	key:f12                  function key
//	key:~                    printable character
//
// Several forms may be joined with commas; any of them triggers.
func Parse(spec string) (Recognizer, error) {
	parts := strings.Split(spec, ",")
	if len(parts) > 1 {
		rs := make([]Recognizer, 0, len(parts))
		for _, part := range parts {
			r, err := Parse(part)
			if err != nil {
				return nil, err
			}
			rs = append(rs, r)
		}
		return AnyOf(rs...), nil
	}

	spec = strings.TrimSpace(spec)
	kind, arg, _ := strings.Cut(spec, ":")
	switch strings.ToLower(kind) {
	case "", "edge-swipe":
		if arg == "" {
			return Default(), nil
		}
		edge, err := parseEdge(arg)
		if err != nil {
			return nil, err
		}
		return NewEdgeSwipe(edge), nil
	case "key":
		return parseKey(arg)
	default:
		return nil, fmt.Errorf("unknown gesture kind %q", kind)
	}
}

func parseEdge(s string) (Edge, error) {
	for _, e := range []Edge{EdgeRight, EdgeLeft, EdgeTop, EdgeBottom} {
		if strings.EqualFold(s, e.String()) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown screen edge %q", s)
}

func parseKey(s string) (Recognizer, error) {
	if s == "" {
		return nil, fmt.Errorf("empty key binding")
	}
	// A lone printable character is taken literally, including "+".
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return KeyBinding{Key: tcell.KeyRune, Rune: r}, nil
	}

	lower := strings.ToLower(s)
	if mod, rest, ok := strings.Cut(lower, "+"); ok && rest != "" {
		switch mod {
		case "ctrl":
			if len(rest) == 1 && rest[0] >= 'a' && rest[0] <= 'z' {
				return KeyBinding{Key: tcell.KeyCtrlA + tcell.Key(rest[0]-'a')}, nil
			}
			return nil, fmt.Errorf("unsupported control key %q", s)
		case "alt":
			r, size := utf8.DecodeRuneInString(s[len(mod)+1:])
			if size == 0 || size != len(s)-len(mod)-1 {
				return nil, fmt.Errorf("unsupported alt key %q", s)
			}
			return KeyBinding{Key: tcell.KeyRune, Rune: r, Modifiers: tcell.ModAlt}, nil
		}
		return nil, fmt.Errorf("unknown key modifier %q", mod)
	}

	if strings.HasPrefix(lower, "f") {
		if n, err := strconv.Atoi(lower[1:]); err == nil && n >= 1 && n <= 64 {
			return KeyBinding{Key: tcell.KeyF1 + tcell.Key(n-1)}, nil
		}
	}
	if k, ok := namedKeys[lower]; ok {
		return KeyBinding{Key: k}, nil
	}
	return nil, fmt.Errorf("unknown key %q", s)
}
