// Package delimcodec implements a bounded-buffer streaming codec that
// converts between raw wire bytes and discrete events, split and joined on a
// configurable delimiter. Records may not fit in one fixed-size buffer, so
// both directions are built for short, buffer-limited calls:
//
//   - Decode: consumes one input chunk and pushes one Unit per fragment to an
//     emit callback, synchronously and in input order.
//   - Encode: writes as much of one event's serialization as fits into the
//     supplied buffer; the unwritten remainder is retained and continued on
//     the next call with the same event (Idle/Pending state machine).
//   - Flush: end-of-stream drain; in the baseline it delegates to Decode.
//
// Text is converted through a resumable charset transform (golang.org/x/text),
// so a multi-byte character is never split incorrectly across calls.
//
// A Codec instance is not safe for concurrent use. The supported parallelism
// model is Clone: one instance per worker, sharing only immutable
// configuration, each with its own identity.
//
// Known limitation, kept on purpose: Decode treats every chunk as
// self-contained. A record whose bytes straddle two chunks is emitted as two
// truncated fragments instead of being buffered across calls.
package delimcodec
