package csr

import "github.com/katalvlaran/reachcompress/internal/errs"

// Sentinel errors re-exported at package scope for ergonomic errors.Is checks
// (csr.ErrInvalidVertex instead of errs.ErrInvalidVertex), matching the
// teacher's per-package Err* convention.
var (
	ErrInvalidVertex = errs.ErrInvalidVertex
)
