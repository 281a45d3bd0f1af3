package core

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// RecordSize is the total footprint of a Record in bytes. The inline
// argument buffer is sized so that header, bookkeeping, and buffer
// together occupy exactly this many bytes on the caller's stack.
const RecordSize = 256

// inlineCap is RecordSize minus the header and bookkeeping fields.
const inlineCap = RecordSize - (8 + 8 + 16 + 16 + 24 + 4 + 4 + 1)

// Argument type tags. Each encoded argument entry is one tag byte
// followed by the payload for that tag.
const (
	TagChar uint8 = iota // 1 byte
	TagUint32            // 4 bytes
	TagUint64            // 8 bytes
	TagInt32             // 4 bytes
	TagInt64             // 8 bytes
	TagFloat64           // 8 bytes
	TagLiteral           // data pointer + length, see LiteralPayloadSize
	TagString            // raw bytes plus a terminating zero
)

// LiteralPayloadSize is the encoded size of a TagLiteral payload:
// an 8-byte data pointer followed by a 4-byte length. Go strings carry
// no terminator, so the length rides along with the pointer.
const LiteralPayloadSize = 12

// Literal marks a string whose backing bytes have static lifetime.
// Only untyped constant strings may be converted to Literal: the encoder
// stores the string's data pointer instead of copying its bytes, which
// is sound only for strings the runtime will never reclaim.
type Literal string

// Record is one log event: a fixed header plus a tail of tag-encoded
// argument entries, formatted lazily by the consumer. A Record is
// move-only; MoveTo transfers buffer ownership and empties the source.
// The zero Record is empty and safe to destroy.
type Record struct {
	stamp    uint64
	tid      uint64
	file     string
	function string
	heap     []byte
	line     uint32
	used     uint32
	level    Level
	inline   [inlineCap]byte
}

// NewRecord returns a Record with a complete header and an empty
// argument tail. The timestamp is captured here, on the producer.
func NewRecord(level Level, file, function string, line uint32) Record {
	var r Record
	r.Init(level, file, function, line)
	return r
}

// Init resets the record and writes a fresh header in place. It exists
// so pooled records can be reused without copying RecordSize bytes.
func (r *Record) Init(level Level, file, function string, line uint32) {
	r.stamp = Now()
	r.tid = ThreadID()
	r.file = file
	r.function = function
	r.line = line
	r.level = level
	r.used = 0
	r.heap = nil
}

// SetStamp overrides the timestamp captured by Init.
func (r *Record) SetStamp(us uint64) { r.stamp = us }

// Header accessors, read by the formatter on the consumer side.

func (r *Record) Stamp() uint64    { return r.stamp }
func (r *Record) TID() uint64      { return r.tid }
func (r *Record) File() string     { return r.file }
func (r *Record) Function() string { return r.function }
func (r *Record) Line() uint32     { return r.line }
func (r *Record) Level() Level     { return r.level }

// Body returns the encoded argument tail.
func (r *Record) Body() []byte { return r.buffer()[:r.used] }

// Len returns the number of encoded argument bytes.
func (r *Record) Len() int { return int(r.used) }

// Cap returns the current argument buffer capacity.
func (r *Record) Cap() int {
	if r.heap != nil {
		return len(r.heap)
	}
	return inlineCap
}

// OnHeap reports whether the record has spilled to a heap buffer.
func (r *Record) OnHeap() bool { return r.heap != nil }

// MoveTo transfers the record into dst, heap buffer included, and
// leaves the source empty. The previous contents of dst are discarded.
func (r *Record) MoveTo(dst *Record) {
	*dst = *r
	r.heap = nil
	r.used = 0
}

// Reset empties the record. Any heap buffer is released to the GC.
func (r *Record) Reset() {
	r.heap = nil
	r.used = 0
}

func (r *Record) buffer() []byte {
	if r.heap != nil {
		return r.heap
	}
	return r.inline[:]
}

// grow ensures capacity for extra more bytes. The first spill moves the
// inline contents to a heap buffer of at least 512 bytes; after that,
// capacity doubles or jumps straight to the required size, whichever is
// greater. Growth never shrinks.
func (r *Record) grow(extra int) {
	required := int(r.used) + extra
	if r.heap == nil {
		if required <= inlineCap {
			return
		}
		size := required
		if size < 512 {
			size = 512
		}
		buf := make([]byte, size)
		copy(buf, r.inline[:r.used])
		r.heap = buf
		return
	}
	if required <= len(r.heap) {
		return
	}
	size := 2 * len(r.heap)
	if size < required {
		size = required
	}
	buf := make([]byte, size)
	copy(buf, r.heap[:r.used])
	r.heap = buf
}

// AppendChar appends a single byte argument.
func (r *Record) AppendChar(c byte) {
	r.grow(2)
	b := r.buffer()
	b[r.used] = TagChar
	b[r.used+1] = c
	r.used += 2
}

// AppendUint32 appends a uint32 argument.
func (r *Record) AppendUint32(v uint32) {
	r.grow(5)
	b := r.buffer()
	b[r.used] = TagUint32
	binary.LittleEndian.PutUint32(b[r.used+1:], v)
	r.used += 5
}

// AppendUint64 appends a uint64 argument.
func (r *Record) AppendUint64(v uint64) {
	r.grow(9)
	b := r.buffer()
	b[r.used] = TagUint64
	binary.LittleEndian.PutUint64(b[r.used+1:], v)
	r.used += 9
}

// AppendInt32 appends an int32 argument.
func (r *Record) AppendInt32(v int32) {
	r.grow(5)
	b := r.buffer()
	b[r.used] = TagInt32
	binary.LittleEndian.PutUint32(b[r.used+1:], uint32(v))
	r.used += 5
}

// AppendInt64 appends an int64 argument.
func (r *Record) AppendInt64(v int64) {
	r.grow(9)
	b := r.buffer()
	b[r.used] = TagInt64
	binary.LittleEndian.PutUint64(b[r.used+1:], uint64(v))
	r.used += 9
}

// AppendFloat64 appends a float64 argument.
func (r *Record) AppendFloat64(v float64) {
	r.grow(9)
	b := r.buffer()
	b[r.used] = TagFloat64
	binary.LittleEndian.PutUint64(b[r.used+1:], math.Float64bits(v))
	r.used += 9
}

// AppendLiteral appends a static string by reference: the encoded
// payload is the string's data pointer and length, no bytes are copied.
func (r *Record) AppendLiteral(s Literal) {
	if len(s) == 0 {
		return
	}
	r.grow(1 + LiteralPayloadSize)
	b := r.buffer()
	b[r.used] = TagLiteral
	ptr := uintptr(unsafe.Pointer(unsafe.StringData(string(s))))
	binary.LittleEndian.PutUint64(b[r.used+1:], uint64(ptr))
	binary.LittleEndian.PutUint32(b[r.used+9:], uint32(len(s)))
	r.used += 1 + LiteralPayloadSize
}

// AppendString appends a string of unknown lifetime by copying its
// bytes plus a terminating zero. Empty strings encode nothing.
func (r *Record) AppendString(s string) {
	if len(s) == 0 {
		return
	}
	r.grow(1 + len(s) + 1)
	b := r.buffer()
	b[r.used] = TagString
	copy(b[r.used+1:], s)
	b[int(r.used)+1+len(s)] = 0
	r.used += uint32(1 + len(s) + 1)
}

// DecodeLiteral reconstructs the string referenced by a TagLiteral
// payload. The payload must be at least LiteralPayloadSize bytes.
func DecodeLiteral(payload []byte) string {
	ptr := uintptr(binary.LittleEndian.Uint64(payload))
	n := int(binary.LittleEndian.Uint32(payload[8:]))
	if ptr == 0 || n == 0 {
		return ""
	}
	return unsafe.String((*byte)(unsafe.Pointer(ptr)), n)
}
