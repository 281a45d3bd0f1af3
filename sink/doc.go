// Package sink writes formatted log lines to numbered rolling files.
//
// Durability is best-effort: writes are buffered and flushed on roll
// and close, never fsynced. I/O errors are reported to the caller and
// otherwise ignored; the consumer keeps writing.
package sink
