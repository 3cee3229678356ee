package editline

import (
	"fmt"

	"editline/bridge"
)

// Mod is the modifier set of a key binding.
type Mod int

const (
	ModNone Mod = iota
	ModCtrl
	ModMeta
	ModMetaCtrl
)

// Key names a key for BindKey.
type Key struct {
	Mod  Mod
	Char byte
}

// Plain is the unmodified key c.
func Plain(c byte) Key { return Key{ModNone, c} }

// Ctrl is Control plus c.
func Ctrl(c byte) Key { return Key{ModCtrl, c} }

// Meta is Meta (Alt, or an Escape prefix) plus c.
func Meta(c byte) Key { return Key{ModMeta, c} }

// MetaCtrl is Meta plus Control plus c.
func MetaCtrl(c byte) Key { return Key{ModMetaCtrl, c} }

// Code returns the byte libeditline sees for k. Control keeps the low
// five bits of the character, so Ctrl('d') and Ctrl('D') are both 0x04.
func (k Key) Code() int {
	switch k.Mod {
	case ModCtrl, ModMetaCtrl:
		return int(k.Char & 0x1f)
	default:
		return int(k.Char)
	}
}

// InMetaMap reports whether k is bound in the meta map rather than the
// primary key table.
func (k Key) InMetaMap() bool {
	return k.Mod == ModMeta || k.Mod == ModMetaCtrl
}

// String renders k in the notation ParseKey accepts.
func (k Key) String() string {
	c := string(rune(k.Char))
	switch k.Mod {
	case ModCtrl:
		return "C-" + c
	case ModMeta:
		return "M-" + c
	case ModMetaCtrl:
		return "M-C-" + c
	default:
		return c
	}
}

// ParseKey parses emacs-style key notation: "d", "C-d", "M-d", and
// "M-C-d" (or "C-M-d"). The character must be a single printable ASCII
// byte.
func ParseKey(s string) (Key, error) {
	rest := s
	var ctrl, meta bool
	for len(rest) > 2 && rest[1] == '-' {
		switch rest[0] {
		case 'C':
			if ctrl {
				return Key{}, fmt.Errorf("parsing key %q: repeated C-: %w", s, ErrInvalidKey)
			}
			ctrl = true
		case 'M':
			if meta {
				return Key{}, fmt.Errorf("parsing key %q: repeated M-: %w", s, ErrInvalidKey)
			}
			meta = true
		default:
			return Key{}, fmt.Errorf("parsing key %q: unknown modifier %q: %w", s, rest[:2], ErrInvalidKey)
		}
		rest = rest[2:]
	}

	if len(rest) != 1 || rest[0] < 0x20 || rest[0] > 0x7e {
		return Key{}, fmt.Errorf("parsing key %q: want a single printable character: %w", s, ErrInvalidKey)
	}

	c := rest[0]
	switch {
	case ctrl && meta:
		return MetaCtrl(c), nil
	case ctrl:
		return Ctrl(c), nil
	case meta:
		return Meta(c), nil
	default:
		return Plain(c), nil
	}
}

// MustParseKey is like ParseKey but panics on error.
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// KeyHandler runs when its key is pressed during ReadLine. The returned
// Status tells libeditline how to continue.
type KeyHandler func() Status

// BindKey binds h to k, replacing any handler bound to k before. Only a
// limited number of distinct keys can be bound (see bridge.KeySlots);
// binding more returns an error wrapping ErrNoKeySlots.
func BindKey(k Key, h KeyHandler) error {
	if h == nil {
		return fmt.Errorf("binding %s: nil handler", k)
	}
	slot, err := bridge.BindKey(k.InMetaMap(), k.Code(), func() int { return int(h()) })
	if err != nil {
		return fmt.Errorf("binding %s: %w", k, err)
	}
	lib.BindKey(k.Code(), k.InMetaMap(), slot)
	return nil
}
