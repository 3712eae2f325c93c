package cook_amm

import "github.com/shopspring/decimal"

// Swap fee unit: a pool fee of 30 charges 30/100/100 = 0.3% of the spent side.
var (
	FEE_DENOMINATOR = decimal.NewFromInt(10_000)
	BASIS_POINT_MAX = decimal.NewFromInt(10_000)
)

// Chunked simulation limits. The buy path chunks the raw quote input and the
// sell path chunks the raw base input; the two minimum chunk sizes differ on
// chain and must not be unified.
var (
	MAX_SWAP_CHUNKS      = int64(50)
	MIN_CHUNK_SIZE_QUOTE = decimal.NewFromInt(100)
	MIN_CHUNK_SIZE_BASE  = decimal.NewFromInt(100_000)
)

// Liquidity scaling clamps. The scalar field is stored times ten, and the
// floor keeps near-empty pools from quoting zero output.
var (
	SCALING_SCALAR_DIVISOR = decimal.NewFromInt(10)
	SCALING_FLOOR          = decimal.NewFromFloat(0.0002)
)

// Mathematical constants for calculations
var (
	N0     = decimal.Zero
	N1     = decimal.NewFromInt(1)
	N10    = decimal.NewFromInt(10)
	N100   = decimal.NewFromInt(100)
	N10000 = decimal.NewFromInt(10000)
)
