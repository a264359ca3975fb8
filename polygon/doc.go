// File: doc.go
// Role: package-level documentation and error catalogue cross-reference.
//
// Errors:
//
//	ErrTooFewVertices - fewer than 3 vertices passed to New.
//	ErrNotCCW          - vertices wind clockwise or enclose zero area.
package polygon
