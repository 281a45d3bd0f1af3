package format

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"strconv"
	"sync"

	"github.com/picolog/picolog/core"
)

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.InfoLevel: "[INFO]",
	core.WarnLevel: "[WARN]",
	core.CritLevel: "[CRIT]",
}

// AppendLine formats rec into buf as a single newline-terminated line:
//
//	[<timestamp_us>][<LEVEL>][<thread_id>][<file>:<function>:<line>] <args…>\n
//
// Arguments are concatenated with no separators: integers in base 10,
// float64 in strconv's shortest round-trip form ('g', precision -1),
// chars as themselves, strings as their raw bytes. Formatting is
// deterministic; identical record bytes yield identical output.
func AppendLine(buf *bytes.Buffer, rec *core.Record) {
	buf.WriteByte('[')
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), rec.Stamp(), 10))
	buf.WriteByte(']')

	level := rec.Level()
	if int(level) < len(levelBrackets) {
		buf.WriteString(levelBrackets[level])
	} else {
		buf.WriteString("[XXXX]")
	}

	buf.WriteByte('[')
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), rec.TID(), 10))
	buf.WriteByte(']')

	buf.WriteByte('[')
	buf.WriteString(rec.File())
	buf.WriteByte(':')
	buf.WriteString(rec.Function())
	buf.WriteByte(':')
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(rec.Line()), 10))
	buf.WriteString("] ")

	appendArgs(buf, rec.Body())

	buf.WriteByte('\n')
}

// appendArgs decodes the tag-encoded argument tail. An unknown tag or a
// truncated payload ends decoding for this record; the line is still
// newline-terminated by the caller.
func appendArgs(buf *bytes.Buffer, body []byte) {
	for len(body) > 0 {
		tag := body[0]
		body = body[1:]

		switch tag {
		case core.TagChar:
			if len(body) < 1 {
				return
			}
			buf.WriteByte(body[0])
			body = body[1:]
		case core.TagUint32:
			if len(body) < 4 {
				return
			}
			buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(binary.LittleEndian.Uint32(body)), 10))
			body = body[4:]
		case core.TagUint64:
			if len(body) < 8 {
				return
			}
			buf.Write(strconv.AppendUint(buf.AvailableBuffer(), binary.LittleEndian.Uint64(body), 10))
			body = body[8:]
		case core.TagInt32:
			if len(body) < 4 {
				return
			}
			buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(int32(binary.LittleEndian.Uint32(body))), 10))
			body = body[4:]
		case core.TagInt64:
			if len(body) < 8 {
				return
			}
			buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(binary.LittleEndian.Uint64(body)), 10))
			body = body[8:]
		case core.TagFloat64:
			if len(body) < 8 {
				return
			}
			buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), math.Float64frombits(binary.LittleEndian.Uint64(body)), 'g', -1, 64))
			body = body[8:]
		case core.TagLiteral:
			if len(body) < core.LiteralPayloadSize {
				return
			}
			buf.WriteString(core.DecodeLiteral(body))
			body = body[core.LiteralPayloadSize:]
		case core.TagString:
			i := bytes.IndexByte(body, 0)
			if i < 0 {
				return
			}
			buf.Write(body[:i])
			body = body[i+1:]
		default:
			return
		}
	}
}

// Format formats rec and returns the line as a fresh byte slice.
func Format(rec *core.Record) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	AppendLine(buf, rec)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// FormatTo formats rec and writes the line to w in a single Write call.
func FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	AppendLine(buf, rec)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}
