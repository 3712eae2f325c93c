package server

// ErrorResponse is the standard error envelope for every API error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Details any    `json:"details,omitempty"` // dev mode only
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	OK bool `json:"ok"`
}

// QuoteResponse carries a swap quote. Raw token amounts are decimal strings
// so callers never lose precision to float parsing; the Ui fields are
// display-ready.
type QuoteResponse struct {
	BaseMint         string `json:"base_mint"`
	Side             string `json:"side"`
	AmountIn         string `json:"amount_in"`
	AmountOut        string `json:"amount_out"`
	MinimumAmountOut string `json:"minimum_amount_out"`
	Fee              string `json:"fee"`
	AmountOutUi      string `json:"amount_out_ui"`
	NoSlipAmountUi   string `json:"no_slip_amount_ui"`
	SlippagePct      string `json:"slippage_pct"`
	SlippageBps      uint64 `json:"slippage_bps"`
	TookMs           int64  `json:"took_ms"`
}

// DepositQuoteResponse carries the pairing requirement and LP estimate for
// adding liquidity.
type DepositQuoteResponse struct {
	BaseMint            string `json:"base_mint"`
	ActualInputAmount   string `json:"actual_input_amount"`
	ConsumedInputAmount string `json:"consumed_input_amount"`
	QuoteRequired       string `json:"quote_required"`
	LPMintEstimate      string `json:"lp_mint_estimate"`
	TookMs              int64  `json:"took_ms"`
}

// WithdrawQuoteResponse carries the pro-rata redemption for burning LP
// tokens.
type WithdrawQuoteResponse struct {
	BaseMint       string `json:"base_mint"`
	LPAmountIn     string `json:"lp_amount_in"`
	OutBaseAmount  string `json:"out_base_amount"`
	OutQuoteAmount string `json:"out_quote_amount"`
	TookMs         int64  `json:"took_ms"`
}

// BalancesResponse lists a wallet's raw token holdings keyed by mint.
type BalancesResponse struct {
	Owner    string            `json:"owner"`
	Balances map[string]uint64 `json:"balances"`
}
