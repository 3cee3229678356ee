package native

// Functions in this file are called by libeditline. Their C signatures
// are fixed by the library's callback typedefs.

// #include <stddef.h>
import "C"

import (
	"unsafe"

	"editline/bridge"
)

//export goListPossib
func goListPossib(word *C.char, out ***C.char) C.int {
	return C.int(bridge.ListPossib(Malloc, unsafe.Pointer(word), (*unsafe.Pointer)(unsafe.Pointer(out))))
}

//export goComplete
func goComplete(word *C.char, found *C.int) *C.char {
	return (*C.char)(bridge.Complete(Malloc, unsafe.Pointer(word), (*int32)(unsafe.Pointer(found))))
}

//export goKeySlot
func goKeySlot(slot C.int) C.int {
	return C.int(bridge.DispatchKey(int(slot), StatusStay))
}
