//go:build cgo

package engine

/*
#include <stdlib.h>
*/
import "C"

import (
	"encoding/json"
	"sync"
	"unsafe"

	"github.com/corvidsec/waflex/internal/config"
)

// handles maps the opaque uintptr a C caller holds onto the *Engine it
// names. cgo cannot pass a Go pointer across the boundary safely once
// the Go garbage collector might move or free it, so the FFI surface
// hands out registry keys instead of raw pointers.
var (
	handlesMu sync.Mutex
	handles   = map[uintptr]*Engine{}
	nextID    uintptr
)

func registerEngine(e *Engine) uintptr {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	nextID++
	handles[nextID] = e
	return nextID
}

func lookupEngine(id uintptr) *Engine {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	return handles[id]
}

func unregisterEngine(id uintptr) {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	delete(handles, id)
}

// cString allocates a C string a caller must release via string_free.
func cString(s string) *C.char {
	return C.CString(s)
}

//export engine_new
func engine_new() C.uintptr_t {
	e := New(config.Default())
	return C.uintptr_t(registerEngine(e))
}

//export engine_free
func engine_free(handle C.uintptr_t) {
	unregisterEngine(uintptr(handle))
}

// Exported functions return only the status code; the result JSON is
// written through an out-parameter because cgo does not support
// multi-value returns on //export functions.

//export engine_scan
func engine_scan(handle C.uintptr_t, url *C.char, configJSON *C.char, out **C.char) C.int {
	e := lookupEngine(uintptr(handle))
	if e == nil {
		*out = cString("")
		return C.int(KindInvalidURL.StatusCode())
	}
	applyConfigJSON(e, C.GoString(configJSON))

	result, err := e.Scan(C.GoString(url))
	if err != nil {
		*out = cString("")
		return C.int(StatusCode(err))
	}
	*out = cString(result.MarshalJSON())
	return C.int(0)
}

//export engine_test_technique
func engine_test_technique(handle C.uintptr_t, url *C.char, technique *C.char, out **C.char) C.int {
	e := lookupEngine(uintptr(handle))
	if e == nil {
		*out = cString("")
		return C.int(KindInvalidURL.StatusCode())
	}
	variants, err := e.TestTechnique(C.GoString(url), C.GoString(technique))
	if err != nil {
		*out = cString("")
		return C.int(StatusCode(err))
	}
	data, _ := json.Marshal(struct {
		Variations []string `json:"variations"`
	}{Variations: variants})
	*out = cString(string(data))
	return C.int(0)
}

//export engine_test_variations
func engine_test_variations(handle C.uintptr_t, url *C.char, configJSON *C.char, out **C.char) C.int {
	e := lookupEngine(uintptr(handle))
	if e == nil {
		*out = cString("")
		return C.int(KindInvalidURL.StatusCode())
	}
	applyConfigJSON(e, C.GoString(configJSON))

	result, err := e.TestVariations(C.GoString(url))
	if err != nil {
		*out = cString("")
		return C.int(StatusCode(err))
	}
	*out = cString(result.MarshalJSON())
	return C.int(0)
}

//export engine_detect_waf
func engine_detect_waf(handle C.uintptr_t, url *C.char, out **C.char) C.int {
	e := lookupEngine(uintptr(handle))
	if e == nil {
		*out = cString("")
		return C.int(KindInvalidURL.StatusCode())
	}
	info, err := e.DetectWAF(C.GoString(url))
	if err != nil {
		*out = cString("")
		return C.int(StatusCode(err))
	}
	*out = cString(info.MarshalJSON())
	return C.int(0)
}

//export string_free
func string_free(ptr *C.char) {
	if ptr != nil {
		C.free(unsafe.Pointer(ptr))
	}
}

//export version
func version() *C.char {
	return cString(Version())
}

//export last_error
func last_error(handle C.uintptr_t) *C.char {
	e := lookupEngine(uintptr(handle))
	if e == nil {
		return cString("")
	}
	return cString(e.LastError())
}

// applyConfigJSON overlays a caller-supplied JSON config fragment onto
// e's policy, silently ignoring an empty or malformed payload — a
// malformed config_json falls back to the engine's current policy
// rather than failing the call, since §6 documents no PARSE status for
// this path.
func applyConfigJSON(e *Engine, configJSON string) {
	if configJSON == "" {
		return
	}
	var overlay struct {
		Strategy string `json:"strategy"`
	}
	if err := json.Unmarshal([]byte(configJSON), &overlay); err != nil {
		return
	}
	if overlay.Strategy != "" {
		e.policy.Strategy = config.Strategy(overlay.Strategy)
	}
}
