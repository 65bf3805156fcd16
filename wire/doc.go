// Package wire implements the binary encoding of ir.Node trees.
//
// The format is a depth-first, tag-prefixed stream: each node writes one
// tag byte followed by its payload. Arrays write a 4-byte child count then
// each child's full encoding; objects write a 4-byte entry count then, per
// entry, a length-prefixed key and the value's full encoding. Scalars
// write fixed-width little-endian payloads; null has no payload. There is
// no version header, so format changes are breaking.
//
// Encoder and Decoder work over io.Writer/io.Reader; Marshal, Unmarshal,
// MarshalBase64 and UnmarshalBase64 wrap them over in-memory buffers.
package wire
