// Package format turns encoded records into text lines.
//
// The formatter is stateless and runs only on the consumer goroutine.
// It parses the record header, then walks the argument tail tag by tag.
// A tag it does not recognize ends that record's arguments; the header
// and newline are emitted regardless, so the output file never holds a
// partial line.
package format
