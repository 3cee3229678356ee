package bridge

import (
	"errors"
	"fmt"
)

// KeySlots is the number of native key trampolines. The native handler
// signature takes no arguments, so each bound key needs a trampoline of
// its own that knows which slot it serves.
const KeySlots = 32

var (
	// ErrNoKeySlots is returned when every key trampoline is in use.
	ErrNoKeySlots = errors.New("no free key binding slots")

	// ErrNilHandler is returned when binding a nil handler.
	ErrNilHandler = errors.New("nil key handler")
)

// KeyFunc is a key handler returning a native status ordinal.
type KeyFunc func() int

type keyBinding struct {
	meta bool
	code int
	fn   KeyFunc
}

var keys [KeySlots]*keyBinding

// BindKey assigns fn to the slot for (meta, code) and returns the slot
// index. Binding the same key again reuses its slot and replaces the
// handler.
func BindKey(meta bool, code int, fn KeyFunc) (int, error) {
	if fn == nil {
		return 0, ErrNilHandler
	}

	free := -1
	for i, b := range keys {
		if b == nil {
			if free < 0 {
				free = i
			}
			continue
		}
		if b.meta == meta && b.code == code {
			b.fn = fn
			return i, nil
		}
	}
	if free < 0 {
		return 0, ErrNoKeySlots
	}

	keys[free] = &keyBinding{meta: meta, code: code, fn: fn}
	return free, nil
}

// DispatchKey runs the handler bound to slot. A panicking handler yields
// fallback. Dispatching to a slot nothing is bound to is fatal.
func DispatchKey(slot int, fallback int) int {
	if slot < 0 || slot >= KeySlots || keys[slot] == nil {
		panic(fmt.Sprintf("bridge: key slot %d invoked before it was bound", slot))
	}
	b := keys[slot]
	return guard(fmt.Sprintf("key %#x", b.code), fallback, (func() int)(b.fn))
}
