// Command libtokbridge builds the C shared library hosts load through their
// native-bridge layer (JNI/JNA, P/Invoke, ctypes):
//
//	go build -buildmode=c-shared -o libtokbridge.so ./cmd/libtokbridge
//
// Every export reports failure in-band: a zero handle from TokbridgeCreate,
// or a sentinel JSON payload from TokbridgeTokenize. Strings returned to the
// host are malloc'd and must be released with TokbridgeFreeString.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/samcharles93/tokbridge/internal/version"
	"github.com/samcharles93/tokbridge/pkg/bridge"
)

// TokbridgeCreate loads a tokenizer from a host-owned byte array. The bytes
// are copied into Go memory before the host regains control, so the host may
// free its buffer immediately after the call. Returns 0 if the model is
// rejected or the arguments are unusable.
//
//export TokbridgeCreate
func TokbridgeCreate(data *C.char, length C.int) C.uint64_t {
	if data == nil || length <= 0 {
		return C.uint64_t(bridge.NullHandle)
	}
	model := C.GoBytes(unsafe.Pointer(data), length)
	return C.uint64_t(bridge.CreateTokenizer(model))
}

// TokbridgeTokenize encodes NUL-terminated UTF-8 text with the tokenizer
// behind handle and returns a malloc'd JSON string. A NULL text pointer is
// answered with the appropriate sentinel instead of crashing the host.
//
//export TokbridgeTokenize
func TokbridgeTokenize(handle C.uint64_t, text *C.char) *C.char {
	if text == nil {
		if uint64(handle) == bridge.NullHandle {
			return C.CString(bridge.NullResultJSON)
		}
		return C.CString(bridge.EmptyResultJSON)
	}
	return C.CString(bridge.Tokenize(uint64(handle), C.GoString(text)))
}

// TokbridgeDelete releases the tokenizer behind handle. Zero, unknown, and
// already-deleted handles are ignored.
//
//export TokbridgeDelete
func TokbridgeDelete(handle C.uint64_t) {
	bridge.DeleteTokenizer(uint64(handle))
}

// TokbridgeFreeString releases a string previously returned by
// TokbridgeTokenize or TokbridgeVersion.
//
//export TokbridgeFreeString
func TokbridgeFreeString(s *C.char) {
	C.free(unsafe.Pointer(s))
}

// TokbridgeVersion returns the library version as a malloc'd string.
//
//export TokbridgeVersion
func TokbridgeVersion() *C.char {
	return C.CString(version.String())
}

func main() {}
