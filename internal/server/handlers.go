package server

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mr-tron/base58"
	"github.com/sirupsen/logrus"

	"github.com/daoplays/LetsCook-sub002/cook"
	"github.com/daoplays/LetsCook-sub002/cook/cook_amm"
	"github.com/daoplays/LetsCook-sub002/format"
	"github.com/daoplays/LetsCook-sub002/internal/cache"

	"github.com/gagliardetto/solana-go"
)

// Quoter is the pool quoting surface the handlers depend on. *cook.Cook
// satisfies it; tests substitute a stub.
type Quoter interface {
	BuyQuote(ctx context.Context, baseMint solana.PublicKey, amountIn *big.Int, slippageBps uint64) (*cook_amm.QuoteResult, *cook.Pool, error)
	SellQuote(ctx context.Context, baseMint solana.PublicKey, amountIn *big.Int, slippageBps uint64) (*cook_amm.QuoteResult, *cook.Pool, error)
	GetDepositQuote(ctx context.Context, baseMint solana.PublicKey, amountIn *big.Int) (*cook_amm.DepositQuote, *cook.Pool, error)
	GetWithdrawQuote(ctx context.Context, baseMint solana.PublicKey, lpAmountIn *big.Int) (*cook_amm.WithdrawQuote, *cook.Pool, error)
	MintBalances(ctx context.Context, owner solana.PublicKey) (map[string]uint64, error)
}

// Handlers contains all dependencies for API endpoint handlers.
type Handlers struct {
	Quoter             Quoter
	Quotes             *cache.QuoteCache // optional response cache
	History            *cache.QuoteLog   // optional quote sink
	DefaultSlippageBps uint64
	DevMode            bool
	Logger             *logrus.Logger
}

func (h *Handlers) err(c echo.Context, code int, msg string, details any) error {
	resp := ErrorResponse{Error: msg, Code: code}
	if h.DevMode && details != nil {
		resp.Details = details
	}
	return c.JSON(code, resp)
}

func (h *Handlers) withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = 10 * time.Second
	}
	return context.WithTimeout(ctx, d)
}

// Health returns a simple health check endpoint.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{OK: true})
}

// parsePubkey validates a base58 address parameter before it reaches the RPC
// layer.
func parsePubkey(raw string) (solana.PublicKey, error) {
	raw = strings.TrimSpace(raw)
	decoded, err := base58.Decode(raw)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("not base58: %w", err)
	}
	if len(decoded) != solana.PublicKeyLength {
		return solana.PublicKey{}, fmt.Errorf("expected %d bytes, got %d", solana.PublicKeyLength, len(decoded))
	}
	return solana.PublicKeyFromBytes(decoded), nil
}

// parseAmount parses a positive raw token amount.
func parseAmount(raw string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(strings.TrimSpace(raw), 10)
	if !ok {
		return nil, fmt.Errorf("not a base-10 integer")
	}
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("must be positive")
	}
	return amount, nil
}

func (h *Handlers) slippageBps(c echo.Context) (uint64, error) {
	raw := c.QueryParam("slippage_bps")
	if raw == "" {
		return h.DefaultSlippageBps, nil
	}
	bps, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not an integer")
	}
	if bps > 10_000 {
		return 0, fmt.Errorf("max 10000")
	}
	return bps, nil
}

// quoteStatus maps quoting errors onto HTTP statuses. Pool lookups that fail
// because the pool is missing or empty are client-visible conditions, not
// server faults.
func quoteStatus(err error) (int, string) {
	switch {
	case errors.Is(err, cook.ErrPoolNotFound):
		return http.StatusNotFound, "pool not found"
	case errors.Is(err, cook.ErrPoolNotReady):
		return http.StatusConflict, "pool not ready"
	case errors.Is(err, cook_amm.ErrPoolUninitialized):
		return http.StatusConflict, "pool has no liquidity"
	case errors.Is(err, cook_amm.ErrInvalidInput):
		return http.StatusBadRequest, "invalid amount"
	case errors.Is(err, cook_amm.ErrDegenerateQuote):
		return http.StatusBadRequest, "amount too small to quote"
	default:
		return http.StatusBadGateway, "quote failed"
	}
}

// BuyQuote quotes spending quote token for base token.
// GET /v1/quote/buy/:mint?amount=<raw>&slippage_bps=<bps>
func (h *Handlers) BuyQuote(c echo.Context) error {
	return h.swapQuote(c, "buy")
}

// SellQuote quotes spending base token for quote token.
// GET /v1/quote/sell/:mint?amount=<raw>&slippage_bps=<bps>
func (h *Handlers) SellQuote(c echo.Context) error {
	return h.swapQuote(c, "sell")
}

func (h *Handlers) swapQuote(c echo.Context, side string) error {
	mint, err := parsePubkey(c.Param("mint"))
	if err != nil {
		return h.err(c, http.StatusBadRequest, "invalid mint", map[string]any{"mint": err.Error()})
	}
	amountIn, err := parseAmount(c.QueryParam("amount"))
	if err != nil {
		return h.err(c, http.StatusBadRequest, "invalid amount", map[string]any{"amount": err.Error()})
	}
	bps, err := h.slippageBps(c)
	if err != nil {
		return h.err(c, http.StatusBadRequest, "invalid slippage_bps", map[string]any{"slippage_bps": err.Error()})
	}

	ctx, cancel := h.withTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	cacheKey := fmt.Sprintf("%s:%s:%s:%d", side, mint, amountIn, bps)
	if h.Quotes != nil {
		var cached QuoteResponse
		if err := h.Quotes.Get(ctx, cacheKey, &cached); err == nil {
			return c.JSON(http.StatusOK, cached)
		}
	}

	start := time.Now()

	var (
		result    *cook_amm.QuoteResult
		poolState *cook.Pool
	)
	if side == "buy" {
		result, poolState, err = h.Quoter.BuyQuote(ctx, mint, amountIn, bps)
	} else {
		result, poolState, err = h.Quoter.SellQuote(ctx, mint, amountIn, bps)
	}
	if err != nil {
		code, msg := quoteStatus(err)
		return h.err(c, code, msg, map[string]any{"err": err.Error()})
	}

	outDecimals := int32(poolState.AMM.BaseDecimals)
	if side == "sell" {
		outDecimals = int32(poolState.AMM.QuoteDecimals)
	}

	resp := QuoteResponse{
		BaseMint:         mint.String(),
		Side:             side,
		AmountIn:         amountIn.String(),
		AmountOut:        result.AmountOut.String(),
		MinimumAmountOut: result.MinimumAmountOut.String(),
		Fee:              result.Fee.String(),
		AmountOutUi:      format.ForDisplay(result.AmountOutUi, outDecimals),
		NoSlipAmountUi:   format.ForDisplay(result.NoSlipAmountUi, outDecimals),
		SlippagePct:      format.Percent(result.SlippagePct),
		SlippageBps:      bps,
		TookMs:           time.Since(start).Milliseconds(),
	}

	if h.Quotes != nil {
		if err := h.Quotes.Set(ctx, cacheKey, resp); err != nil {
			h.Logger.WithError(err).Warn("quote cache set failed")
		}
	}
	h.record(ctx, &cache.QuoteRecord{
		Timestamp:   time.Now().UTC(),
		BaseMint:    resp.BaseMint,
		Side:        side,
		AmountIn:    resp.AmountIn,
		AmountOut:   resp.AmountOut,
		Fee:         resp.Fee,
		SlippagePct: result.SlippagePct.InexactFloat64(),
		TookMs:      resp.TookMs,
	})

	return c.JSON(http.StatusOK, resp)
}

// DepositQuote quotes the pairing requirement for adding liquidity.
// GET /v1/liquidity/deposit/:mint?amount=<raw base>
func (h *Handlers) DepositQuote(c echo.Context) error {
	mint, err := parsePubkey(c.Param("mint"))
	if err != nil {
		return h.err(c, http.StatusBadRequest, "invalid mint", map[string]any{"mint": err.Error()})
	}
	amountIn, err := parseAmount(c.QueryParam("amount"))
	if err != nil {
		return h.err(c, http.StatusBadRequest, "invalid amount", map[string]any{"amount": err.Error()})
	}

	ctx, cancel := h.withTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	start := time.Now()
	quote, _, err := h.Quoter.GetDepositQuote(ctx, mint, amountIn)
	if err != nil {
		code, msg := quoteStatus(err)
		return h.err(c, code, msg, map[string]any{"err": err.Error()})
	}

	resp := DepositQuoteResponse{
		BaseMint:            mint.String(),
		ActualInputAmount:   quote.ActualInputAmount.String(),
		ConsumedInputAmount: quote.ConsumedInputAmount.String(),
		QuoteRequired:       quote.QuoteRequired.String(),
		LPMintEstimate:      quote.LPMintEstimate.String(),
		TookMs:              time.Since(start).Milliseconds(),
	}
	h.record(ctx, &cache.QuoteRecord{
		Timestamp: time.Now().UTC(),
		BaseMint:  resp.BaseMint,
		Side:      "deposit",
		AmountIn:  resp.ActualInputAmount,
		AmountOut: resp.LPMintEstimate,
		TookMs:    resp.TookMs,
	})
	return c.JSON(http.StatusOK, resp)
}

// WithdrawQuote quotes the pro-rata redemption for burning LP tokens.
// GET /v1/liquidity/withdraw/:mint?amount=<raw lp>
func (h *Handlers) WithdrawQuote(c echo.Context) error {
	mint, err := parsePubkey(c.Param("mint"))
	if err != nil {
		return h.err(c, http.StatusBadRequest, "invalid mint", map[string]any{"mint": err.Error()})
	}
	lpAmountIn, err := parseAmount(c.QueryParam("amount"))
	if err != nil {
		return h.err(c, http.StatusBadRequest, "invalid amount", map[string]any{"amount": err.Error()})
	}

	ctx, cancel := h.withTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	start := time.Now()
	quote, _, err := h.Quoter.GetWithdrawQuote(ctx, mint, lpAmountIn)
	if err != nil {
		code, msg := quoteStatus(err)
		return h.err(c, code, msg, map[string]any{"err": err.Error()})
	}

	resp := WithdrawQuoteResponse{
		BaseMint:       mint.String(),
		LPAmountIn:     lpAmountIn.String(),
		OutBaseAmount:  quote.OutBaseAmount.String(),
		OutQuoteAmount: quote.OutQuoteAmount.String(),
		TookMs:         time.Since(start).Milliseconds(),
	}
	h.record(ctx, &cache.QuoteRecord{
		Timestamp: time.Now().UTC(),
		BaseMint:  resp.BaseMint,
		Side:      "withdraw",
		AmountIn:  resp.LPAmountIn,
		AmountOut: resp.OutBaseAmount,
		TookMs:    resp.TookMs,
	})
	return c.JSON(http.StatusOK, resp)
}

// Balances lists a wallet's token holdings across both token programs.
// GET /v1/balances/:owner
func (h *Handlers) Balances(c echo.Context) error {
	owner, err := parsePubkey(c.Param("owner"))
	if err != nil {
		return h.err(c, http.StatusBadRequest, "invalid owner", map[string]any{"owner": err.Error()})
	}

	ctx, cancel := h.withTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	balances, err := h.Quoter.MintBalances(ctx, owner)
	if err != nil {
		return h.err(c, http.StatusBadGateway, "failed to get balances", map[string]any{"err": err.Error()})
	}
	return c.JSON(http.StatusOK, BalancesResponse{Owner: owner.String(), Balances: balances})
}

// record writes a served quote to the history sink, best effort.
func (h *Handlers) record(ctx context.Context, rec *cache.QuoteRecord) {
	if h.History == nil {
		return
	}
	if err := h.History.InsertQuote(ctx, rec); err != nil {
		h.Logger.WithError(err).Warn("quote history insert failed")
	}
}
