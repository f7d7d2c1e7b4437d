// Package mtx: sentinel error set.
// All loader errors are one of these sentinels, wrapped with fmt.Errorf and
// %w so callers can match via errors.Is.

package mtx

import "errors"

var (
	// ErrEmptyFile is returned when the input has no header line at all.
	ErrEmptyFile = errors.New("mtx: empty file")

	// ErrBadHeader is returned when the first line is not a %%MatrixMarket
	// banner.
	ErrBadHeader = errors.New("mtx: missing or invalid %%MatrixMarket header")

	// ErrBadDimensions is returned when the rows/cols/entries line is missing,
	// has fewer than three fields, or its rows and cols fields are not
	// non-negative integers (the entries field is not checked).
	ErrBadDimensions = errors.New("mtx: invalid dimension line")

	// ErrBadEntry is returned when a coordinate line has fewer than two
	// integer fields (a row and a column).
	ErrBadEntry = errors.New("mtx: invalid coordinate entry")
)
