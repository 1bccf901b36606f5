// Package fix owns the tag=value wire format and its parsing primitives.
//
// Ownership boundary:
// - message framing over a fully buffered input
// - field extraction strategies (full and selective)
// - message encoding for fixtures and synthetic input
//
// Aliasing contract: every Span and every field value returned by this package
// is a view into the caller's buffer. The buffer must outlive every view derived
// from it and must not be mutated while parsing.
package fix
