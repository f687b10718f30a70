package fsgraph

import "errors"

// Contract violations. Adapters panic with an error wrapping one of these; they
// are never returned as ordinary errors.
var (
	ErrUnknownEdge          = errors.New("unknown edge")
	ErrUnexpectedParameters = errors.New("unexpected edge parameters")
	ErrUnimplemented        = errors.New("not implemented")
	ErrVertexMismatch       = errors.New("active vertex does not match declared type")
	ErrScanOpen             = errors.New("failed to open directory for scan")
)
