// Package core defines the shared types at the heart of picolog.
//
// It provides the Level type and the process-wide gate consulted before
// a record is built, and the Record type: one log event's header plus a
// tail of tag-encoded arguments, serialized on the producer and
// formatted later by the consumer.
//
// A Record occupies exactly 256 bytes. Arguments are appended into an
// inline buffer inside those bytes; a record whose arguments fit never
// touches the heap. Oversized tails spill to a heap buffer that grows
// by doubling. Records transfer by MoveTo, which hands over the heap
// buffer and empties the source.
//
// Scalar arguments encode as a tag byte plus a fixed-width value.
// Strings split by lifetime: a Literal is stored by reference (data
// pointer plus length), an ordinary string is copied byte for byte with
// a terminating zero. The split is what keeps the hot path free of
// copies for format-string literals while still admitting runtime
// strings safely.
package core
