// Package logger is the producer-facing surface of picolog.
//
// Init (or InitGuaranteed / InitNonGuaranteed) installs the
// process-wide service: one queue, one rolling file sink, one consumer
// goroutine. Producers then write lines through the chain API:
//
//	logger.Info().Lit("connected to ").Str(addr).Lit(" in ").I64(ms).Lit("ms").Send()
//
// Each statement consults the level gate first; a gated-out statement
// returns a nil *Line and the rest of the chain costs a few nil checks.
// Send moves the finished record into the queue and returns without
// touching the filesystem; formatting and I/O happen on the consumer.
//
// Shutdown drains every record submitted before it was called and
// closes the files. Logging concurrently with Shutdown, or before
// Init, is a programmer error.
package logger
