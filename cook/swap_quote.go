package cook

import (
	"context"
	"math/big"

	"github.com/daoplays/LetsCook-sub002/cook/cook_amm"
	solanago "github.com/daoplays/LetsCook-sub002/solana"
	"github.com/daoplays/LetsCook-sub002/solana/token2022"
	"github.com/shopspring/decimal"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// transferFeeExcluded strips a token-2022 mint's transfer fee from a raw
// amount. Classic mints and mints without the extension pass through.
func transferFeeExcluded(
	ctx context.Context,
	rpcClient *rpc.Client,
	mint solana.PublicKey,
	owner solana.PublicKey,
	amount decimal.Decimal,
) (decimal.Decimal, error) {
	if !owner.Equals(solana.Token2022ProgramID) {
		return amount, nil
	}

	cfg, err := token2022.GetTransferFeeConfig(ctx, rpcClient, mint)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if cfg == nil {
		return amount, nil
	}

	epoch, err := solanago.GetCurrentEpoch(ctx, rpcClient)
	if err != nil {
		return decimal.Decimal{}, err
	}
	fee := token2022.GetEpochFee(cfg, epoch)

	net, _ := cook_amm.CalculateTransferFeeExcludedAmount(amount, &cook_amm.TransferFeeConfig{
		BasisPoints: fee.BasisPoints,
		MaximumFee:  fee.MaximumFee,
	})
	return net, nil
}

// SwapQuote gets the expected swap output for buying or selling against a
// pool's live state.
//
// Example:
//
// result, poolState, _ := SwapQuote(
//
//	ctx,
//	rpcClient,
//	baseMint, // pool (token) address
//	false, // buy(quote=>base) sell(base=>quote)
//	amountIn, // raw amount to spend
//	slippageBps, // 250 = 2.5%
//
// )
func SwapQuote(
	ctx context.Context,
	rpcClient *rpc.Client,
	baseMint solana.PublicKey,
	swapBaseForQuote bool,
	amountIn *big.Int,
	slippageBps uint64,
) (*cook_amm.QuoteResult, *Pool, error) {
	poolState, err := GetPoolByBaseMint(ctx, rpcClient, baseMint)
	if err != nil {
		return nil, nil, err
	}

	direction := cook_amm.TradeDirectionQuoteToBase
	spentMint := poolState.QuoteMint
	spentOwner := poolState.QuoteToken.Owner
	if swapBaseForQuote {
		direction = cook_amm.TradeDirectionBaseToQuote
		spentMint = poolState.BaseMint
		spentOwner = poolState.BaseToken.Owner
	}

	actualAmountIn, err := transferFeeExcluded(ctx, rpcClient, spentMint, spentOwner, decimal.NewFromBigInt(amountIn, 0))
	if err != nil {
		return nil, nil, err
	}

	quote, err := cook_amm.SwapQuote(poolState.AMM, direction, actualAmountIn, slippageBps)
	if err != nil {
		return nil, nil, err
	}
	return quote, poolState, nil
}

// SwapQuote gets the expected swap output for buying or selling against a
// pool's live state. It depends on the SwapQuote function.
func (m *Cook) SwapQuote(
	ctx context.Context,
	baseMint solana.PublicKey,
	swapBaseForQuote bool,
	amountIn *big.Int,
	slippageBps uint64,
) (*cook_amm.QuoteResult, *Pool, error) {
	return SwapQuote(ctx, m.rpcClient, baseMint, swapBaseForQuote, amountIn, slippageBps)
}

// BuyQuote gets the quotation for spending quote token to receive base token.
//
// Example:
//
// result, poolState, _ := m.BuyQuote(ctx, baseMint, amountIn, 250)
func (m *Cook) BuyQuote(
	ctx context.Context,
	baseMint solana.PublicKey,
	amountIn *big.Int,
	slippageBps uint64,
) (*cook_amm.QuoteResult, *Pool, error) {
	return m.SwapQuote(ctx, baseMint, false, amountIn, slippageBps)
}

// SellQuote gets the quotation for spending base token to receive quote token.
//
// Example:
//
// result, poolState, _ := m.SellQuote(ctx, baseMint, amountIn, 250)
func (m *Cook) SellQuote(
	ctx context.Context,
	baseMint solana.PublicKey,
	amountIn *big.Int,
	slippageBps uint64,
) (*cook_amm.QuoteResult, *Pool, error) {
	return m.SwapQuote(ctx, baseMint, true, amountIn, slippageBps)
}

// MintBalances returns a wallet's raw token holdings keyed by mint, merged
// across the classic and token-2022 programs.
func (m *Cook) MintBalances(ctx context.Context, owner solana.PublicKey) (map[string]uint64, error) {
	classic, err := solanago.MintBalances(ctx, m.rpcClient, owner, solana.TokenProgramID)
	if err != nil {
		return nil, err
	}
	modern, err := solanago.MintBalances(ctx, m.rpcClient, owner, solana.Token2022ProgramID)
	if err != nil {
		return nil, err
	}
	for mint, amount := range modern {
		classic[mint] = amount
	}
	return classic, nil
}
