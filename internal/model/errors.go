package model

import "errors"

// ErrMissingColumn indicates the canonical schema could not be established:
// a required OHLCV column was not mappable from the raw table.
var ErrMissingColumn = errors.New("missing required column")

// ErrInsufficientData indicates a fetch returned empty or fewer than two rows,
// so change-over-period metrics would be meaningless.
var ErrInsufficientData = errors.New("not enough data")
