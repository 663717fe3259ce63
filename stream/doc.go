// Package stream provides incremental TOON encoding and decoding.
//
// The Encoder is pull-based: Next returns one output line per call and
// io.EOF after the last, keeping memory proportional to nesting depth
// rather than document size. The Decoder drives the parse machine over a
// LineReader, so input can arrive a line at a time from any source.
//
// Both directions produce exactly the same documents as the one-shot
// encode and parse packages; streaming changes delivery, not semantics.
package stream
