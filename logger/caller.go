package logger

import (
	"encoding/binary"
	"hash/maphash"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/puzpuzpuz/xsync/v2"
)

// callSite is the resolved location of one logging call.
type callSite struct {
	file     string
	function string
	line     uint32
}

// callSites caches resolved call sites by program counter, so each
// logging statement pays for runtime.FuncForPC and the name trimming
// once. The strings it holds come from the runtime's file and function
// tables and live for the whole process, which is what lets records
// reference them without copying.
var callSites = xsync.NewTypedMapOf[uintptr, callSite](func(seed maphash.Seed, pc uintptr) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(pc))
	return maphash.Bytes(seed, buf[:])
})

// site resolves the caller skip frames up the stack.
func site(skip int) callSite {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return callSite{file: "???", function: "???"}
	}
	if cs, ok := callSites.Load(pc); ok {
		return cs
	}

	var function string
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if i := strings.LastIndexByte(function, '.'); i >= 0 {
			function = function[i+1:]
		}
	}
	cs := callSite{
		file:     filepath.Base(file),
		function: function,
		line:     uint32(line),
	}
	callSites.Store(pc, cs)
	return cs
}
