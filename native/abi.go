// Package native is the cgo boundary with libeditline: the prototypes the
// library exports, the callback signatures it imposes, and thin Go
// wrappers that marshal arguments across.
//
// The prototypes are declared here rather than taken from editline.h so
// the contract this package depends on is written down in one place.
package native

/*
#cgo LDFLAGS: -leditline
#include <stdlib.h>

typedef enum {
	CSdone = 0,
	CSeof,
	CSmove,
	CSdispatch,
	CSstay,
	CSsignal
} el_status_t;

typedef el_status_t el_keymap_func_t(void);
typedef int rl_list_possib_func_t(char *, char ***);
typedef char *rl_complete_func_t(char *, int *);

extern char *rl_line_buffer;

extern char *readline(const char *prompt);
extern int read_history(const char *filename);
extern int write_history(const char *filename);
extern void add_history(const char *line);

extern el_status_t el_bind_key(int key, el_keymap_func_t function);
extern el_status_t el_bind_key_in_metamap(int key, el_keymap_func_t function);

extern rl_complete_func_t *rl_set_complete_func(rl_complete_func_t *func);
extern rl_list_possib_func_t *rl_set_list_possib_func(rl_list_possib_func_t *func);

// Implemented in Go, see exports.go.
extern int goListPossib(char *word, char ***out);
extern char *goComplete(char *word, int *found);
extern int goKeySlot(int slot);

// malloc may return NULL here, unlike C.malloc which aborts.
static void *el_alloc(size_t n) {
	return malloc(n);
}

static void el_install_list_possib(void) {
	rl_set_list_possib_func(goListPossib);
}

static void el_install_complete(void) {
	rl_set_complete_func(goComplete);
}

#define EL_KEY_SLOTS 32

#define EL_KEY_SLOT(n) \
	static el_status_t el_key_slot_##n(void) { return (el_status_t)goKeySlot(n); }

EL_KEY_SLOT(0)  EL_KEY_SLOT(1)  EL_KEY_SLOT(2)  EL_KEY_SLOT(3)
EL_KEY_SLOT(4)  EL_KEY_SLOT(5)  EL_KEY_SLOT(6)  EL_KEY_SLOT(7)
EL_KEY_SLOT(8)  EL_KEY_SLOT(9)  EL_KEY_SLOT(10) EL_KEY_SLOT(11)
EL_KEY_SLOT(12) EL_KEY_SLOT(13) EL_KEY_SLOT(14) EL_KEY_SLOT(15)
EL_KEY_SLOT(16) EL_KEY_SLOT(17) EL_KEY_SLOT(18) EL_KEY_SLOT(19)
EL_KEY_SLOT(20) EL_KEY_SLOT(21) EL_KEY_SLOT(22) EL_KEY_SLOT(23)
EL_KEY_SLOT(24) EL_KEY_SLOT(25) EL_KEY_SLOT(26) EL_KEY_SLOT(27)
EL_KEY_SLOT(28) EL_KEY_SLOT(29) EL_KEY_SLOT(30) EL_KEY_SLOT(31)

static el_keymap_func_t *el_key_slots[EL_KEY_SLOTS] = {
	el_key_slot_0,  el_key_slot_1,  el_key_slot_2,  el_key_slot_3,
	el_key_slot_4,  el_key_slot_5,  el_key_slot_6,  el_key_slot_7,
	el_key_slot_8,  el_key_slot_9,  el_key_slot_10, el_key_slot_11,
	el_key_slot_12, el_key_slot_13, el_key_slot_14, el_key_slot_15,
	el_key_slot_16, el_key_slot_17, el_key_slot_18, el_key_slot_19,
	el_key_slot_20, el_key_slot_21, el_key_slot_22, el_key_slot_23,
	el_key_slot_24, el_key_slot_25, el_key_slot_26, el_key_slot_27,
	el_key_slot_28, el_key_slot_29, el_key_slot_30, el_key_slot_31,
};

static void el_bind_slot(int key, int meta, int slot) {
	if (meta)
		el_bind_key_in_metamap(key, el_key_slots[slot]);
	else
		el_bind_key(key, el_key_slots[slot]);
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"editline/bridge"
	"editline/cstring"
)

// Status ordinals of el_status_t.
const (
	StatusDone     = int(C.CSdone)
	StatusEOF      = int(C.CSeof)
	StatusMove     = int(C.CSmove)
	StatusDispatch = int(C.CSdispatch)
	StatusStay     = int(C.CSstay)
	StatusSignal   = int(C.CSsignal)
)

// ErrUnencodable is returned when a Go string cannot be handed to the
// library.
var ErrUnencodable = cstring.ErrUnencodable

func init() {
	if int(C.EL_KEY_SLOTS) != bridge.KeySlots {
		panic(fmt.Sprintf("native: %d key trampolines, bridge expects %d", int(C.EL_KEY_SLOTS), bridge.KeySlots))
	}
}

type allocator struct{}

func (allocator) Alloc(size uintptr) unsafe.Pointer {
	return C.el_alloc(C.size_t(size))
}

func (allocator) Free(p unsafe.Pointer) {
	C.free(p)
}

// Malloc allocates with the C allocator libeditline frees with.
var Malloc cstring.Allocator = allocator{}

// withCString runs fn with a native copy of s that is freed afterwards.
func withCString(s string, fn func(*C.char)) error {
	p, ok := cstring.Dup(Malloc, s)
	if !ok {
		return ErrUnencodable
	}
	defer Malloc.Free(p)
	fn((*C.char)(p))
	return nil
}

// ReadLine calls readline(3). The library returns a malloc'd copy of the
// line, which is decoded and released here. A NULL result means end of
// input and reports false.
func ReadLine(prompt string) (string, bool) {
	var line *C.char
	if err := withCString(prompt, func(p *C.char) { line = C.readline(p) }); err != nil {
		return "", false
	}
	if line == nil {
		return "", false
	}
	defer Malloc.Free(unsafe.Pointer(line))
	return cstring.Decode(unsafe.Pointer(line))
}

// LineBuffer decodes rl_line_buffer, the line being edited. The buffer
// belongs to the library and is only meaningful inside a callback.
func LineBuffer() (string, bool) {
	return cstring.Decode(unsafe.Pointer(C.rl_line_buffer))
}

// ReadHistory calls read_history(3) and returns its status code.
func ReadHistory(path string) (int, error) {
	var rc C.int
	err := withCString(path, func(p *C.char) { rc = C.read_history(p) })
	return int(rc), err
}

// WriteHistory calls write_history(3) and returns its status code.
func WriteHistory(path string) (int, error) {
	var rc C.int
	err := withCString(path, func(p *C.char) { rc = C.write_history(p) })
	return int(rc), err
}

// AddHistory calls add_history(3), which copies the line.
func AddHistory(line string) error {
	return withCString(line, func(p *C.char) { C.add_history(p) })
}

// BindKey points key code in the primary table, or the meta map when
// meta is set, at the trampoline for slot.
func BindKey(code int, meta bool, slot int) {
	m := C.int(0)
	if meta {
		m = 1
	}
	C.el_bind_slot(C.int(code), m, C.int(slot))
}

// InstallListPossib makes the library call bridge.ListPossib for
// candidate listing.
func InstallListPossib() {
	C.el_install_list_possib()
}

// InstallComplete makes the library call bridge.Complete for word
// completion.
func InstallComplete() {
	C.el_install_complete()
}
