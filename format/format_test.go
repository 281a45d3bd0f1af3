package format

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/picolog/picolog/core"
)

func newRecord(t *testing.T) core.Record {
	t.Helper()
	return core.NewRecord(core.InfoLevel, "x.cpp", "f", 10)
}

func line(rec *core.Record) string {
	var buf bytes.Buffer
	AppendLine(&buf, rec)
	return buf.String()
}

func TestAppendLine_Prefix(t *testing.T) {
	rec := newRecord(t)
	want := fmt.Sprintf("[%d][INFO][%d][x.cpp:f:10] \n", rec.Stamp(), rec.TID())
	if got := line(&rec); got != want {
		t.Errorf("empty record line = %q, want %q", got, want)
	}
}

func TestAppendLine_ArgsConcatenated(t *testing.T) {
	rec := newRecord(t)
	rec.AppendLiteral("Logging ")
	rec.AppendLiteral("benchmark")
	rec.AppendInt32(7)
	rec.AppendInt32(0)
	rec.AppendChar('K')
	rec.AppendFloat64(-42.42)

	got := line(&rec)
	wantSuffix := "] Logging benchmark70K-42.42\n"
	if !strings.HasSuffix(got, wantSuffix) {
		t.Errorf("line = %q, want suffix %q", got, wantSuffix)
	}
	wantPrefix := fmt.Sprintf("[%d][INFO][%d][x.cpp:f:10] ", rec.Stamp(), rec.TID())
	if !strings.HasPrefix(got, wantPrefix) {
		t.Errorf("line = %q, want prefix %q", got, wantPrefix)
	}
}

func TestScalarRoundTrips(t *testing.T) {
	tests := []struct {
		name   string
		append func(*core.Record)
		want   string
	}{
		{"char", func(r *core.Record) { r.AppendChar('K') }, "K"},
		{"uint32", func(r *core.Record) { r.AppendUint32(4294967295) }, "4294967295"},
		{"uint64", func(r *core.Record) { r.AppendUint64(18446744073709551615) }, "18446744073709551615"},
		{"int32", func(r *core.Record) { r.AppendInt32(-2147483648) }, "-2147483648"},
		{"int64", func(r *core.Record) { r.AppendInt64(-9223372036854775808) }, "-9223372036854775808"},
		{"float64", func(r *core.Record) { r.AppendFloat64(-42.42) }, "-42.42"},
		{"float64_small", func(r *core.Record) { r.AppendFloat64(0.000001) }, "1e-06"},
		{"float64_int", func(r *core.Record) { r.AppendFloat64(3) }, "3"},
		{"literal", func(r *core.Record) { r.AppendLiteral("lit") }, "lit"},
		{"owned", func(r *core.Record) { r.AppendString("owned") }, "owned"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecord(t)
			tt.append(&rec)
			got := line(&rec)
			i := strings.Index(got, "] ")
			args := strings.TrimSuffix(got[i+2:], "\n")
			if args != tt.want {
				t.Errorf("decoded %q, want %q", args, tt.want)
			}
		})
	}
}

func TestDeterministic(t *testing.T) {
	rec := newRecord(t)
	rec.AppendLiteral("a")
	rec.AppendInt64(-5)
	rec.AppendString("b")

	first := line(&rec)
	for i := 0; i < 10; i++ {
		if got := line(&rec); got != first {
			t.Fatalf("formatting diverged on run %d: %q vs %q", i, got, first)
		}
	}
}

func TestUnknownTagStopsArguments(t *testing.T) {
	rec := newRecord(t)
	rec.AppendChar('A')
	rec.AppendChar('B')

	// Corrupt the second entry's tag in place.
	rec.Body()[2] = 0xFF

	got := line(&rec)
	want := fmt.Sprintf("[%d][INFO][%d][x.cpp:f:10] A\n", rec.Stamp(), rec.TID())
	if got != want {
		t.Errorf("line = %q, want %q", got, want)
	}
}

func TestTruncatedPayloadStopsArguments(t *testing.T) {
	rec := newRecord(t)
	rec.AppendChar('A')
	rec.AppendString("unterminated")

	// Clobber the terminator so the string payload never ends.
	body := rec.Body()
	body[len(body)-1] = 'x'

	got := line(&rec)
	if !strings.HasSuffix(got, "] A\n") {
		t.Errorf("line = %q, want the valid prefix then a newline", got)
	}
}

func TestFormatMatchesFormatTo(t *testing.T) {
	rec := newRecord(t)
	rec.AppendLiteral("x")
	rec.AppendUint64(99)

	var buf bytes.Buffer
	if err := FormatTo(&rec, &buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(Format(&rec), buf.Bytes()) {
		t.Error("Format and FormatTo disagree")
	}
}

func TestLargeOwnedString(t *testing.T) {
	payload := strings.Repeat("m", 10000)
	rec := newRecord(t)
	rec.AppendString(payload)
	if !rec.OnHeap() {
		t.Fatal("10000-byte string did not spill to heap")
	}

	got := line(&rec)
	if !strings.Contains(got, payload) {
		t.Error("formatted line lost bytes of the grown record")
	}
}

func BenchmarkAppendLine(b *testing.B) {
	rec := core.NewRecord(core.InfoLevel, "bench.go", "BenchmarkAppendLine", 1)
	rec.AppendLiteral("Logging ")
	rec.AppendInt32(7)
	rec.AppendChar('K')
	rec.AppendFloat64(-42.42)

	var buf bytes.Buffer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		AppendLine(&buf, &rec)
	}
}
