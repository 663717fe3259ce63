// Package parse decodes TOON text into the ir tree form.
//
// The decoder is a line-oriented state machine: token.ScanLines splits the
// input, and Machine consumes one Line at a time, maintaining an explicit
// stack of open containers keyed by indent level. Parse drives the machine
// over a whole document; the stream package drives the same machine
// incrementally.
//
// Strict mode (the default) rejects malformed input with a *DecodeError
// carrying the offending line number. Permissive mode recovers instead:
// short tabular rows are padded with null, long rows truncated,
// unrecognized lines skipped, and the first of duplicate keys wins.
package parse
