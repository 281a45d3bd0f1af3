package logger

import (
	"sync"

	"github.com/picolog/picolog/core"
)

// Line is one in-flight logging statement. Append arguments with the
// chain methods and finish with Send, which moves the record into the
// service. A nil *Line (a gated-out statement) accepts the whole chain
// as a no-op, so call sites never branch.
type Line struct {
	rec core.Record
}

// linePool recycles Line values across logging calls. Send moves the
// record's buffer out before the Line goes back, so pooled Lines hold
// no argument data.
var linePool = sync.Pool{
	New: func() interface{} {
		return new(Line)
	},
}

// Info opens an INFO line, or returns nil when INFO is gated out.
func Info() *Line { return open(core.InfoLevel) }

// Warn opens a WARN line, or returns nil when WARN is gated out.
func Warn() *Line { return open(core.WarnLevel) }

// Crit opens a CRIT line, or returns nil when CRIT is gated out.
func Crit() *Line { return open(core.CritLevel) }

func open(level core.Level) *Line {
	if !core.IsLogged(level) {
		return nil
	}

	ln := linePool.Get().(*Line)
	cs := site(3)
	ln.rec.Init(level, cs.file, cs.function, cs.line)
	if s := current.Load(); s != nil && s.coarse {
		ln.rec.SetStamp(core.CoarseNow())
	}
	return ln
}

// Chr appends a single byte.
func (l *Line) Chr(c byte) *Line {
	if l != nil {
		l.rec.AppendChar(c)
	}
	return l
}

// U32 appends a uint32.
func (l *Line) U32(v uint32) *Line {
	if l != nil {
		l.rec.AppendUint32(v)
	}
	return l
}

// U64 appends a uint64.
func (l *Line) U64(v uint64) *Line {
	if l != nil {
		l.rec.AppendUint64(v)
	}
	return l
}

// I32 appends an int32.
func (l *Line) I32(v int32) *Line {
	if l != nil {
		l.rec.AppendInt32(v)
	}
	return l
}

// I64 appends an int64.
func (l *Line) I64(v int64) *Line {
	if l != nil {
		l.rec.AppendInt64(v)
	}
	return l
}

// F64 appends a float64.
func (l *Line) F64(v float64) *Line {
	if l != nil {
		l.rec.AppendFloat64(v)
	}
	return l
}

// Lit appends a static string by reference. Pass only untyped constant
// strings; see core.Literal.
func (l *Line) Lit(s core.Literal) *Line {
	if l != nil {
		l.rec.AppendLiteral(s)
	}
	return l
}

// Str appends a string of unknown lifetime by copying its bytes.
func (l *Line) Str(s string) *Line {
	if l != nil {
		l.rec.AppendString(s)
	}
	return l
}

// Send moves the record into the service and recycles the Line. The
// Line must not be used afterwards.
func (l *Line) Send() {
	if l == nil {
		return
	}
	Submit(&l.rec)
	linePool.Put(l)
}
