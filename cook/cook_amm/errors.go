package cook_amm

import "errors"

var (
	// ErrInvalidInput rejects negative input amounts before any math runs.
	ErrInvalidInput = errors.New("input amount must not be negative")

	// ErrPoolUninitialized marks a pool whose reserves or LP supply are
	// zero where a division would occur.
	ErrPoolUninitialized = errors.New("pool is not initialized")

	// ErrDegenerateQuote marks a positive input that produces zero output,
	// e.g. the fee consuming the whole amount. Callers render it as "0".
	ErrDegenerateQuote = errors.New("input amount too small to quote")
)
