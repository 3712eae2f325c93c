package letscook

import (
	"github.com/daoplays/LetsCook-sub002/cook"
)

// NewClient creates a new Cook AMM quoting client.
//
// Example:
//
// client, _ := NewClient(rpcClient)
//
// client.BuyQuote(ctx, baseMint, amountIn, 250)
//
// client.SellQuote(ctx, baseMint, amountIn, 250)
var NewClient = cook.NewCook
