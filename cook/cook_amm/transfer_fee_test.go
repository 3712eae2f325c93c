package cook_amm

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCalculateTransferFeeExcludedAmount(t *testing.T) {
	cases := []struct {
		name    string
		amount  int64
		cfg     *TransferFeeConfig
		wantNet int64
		wantFee int64
	}{
		{"no config", 1_000_000, nil, 1_000_000, 0},
		{"zero bps", 1_000_000, &TransferFeeConfig{BasisPoints: 0, MaximumFee: 500}, 1_000_000, 0},
		{"proportional", 1_000_000, &TransferFeeConfig{BasisPoints: 100, MaximumFee: 1 << 40}, 990_000, 10_000},
		{"rounds up", 999, &TransferFeeConfig{BasisPoints: 100, MaximumFee: 1 << 40}, 989, 10},
		{"capped", 1_000_000, &TransferFeeConfig{BasisPoints: 5_000, MaximumFee: 1_000}, 999_000, 1_000},
		{"full bps takes maximum", 1_000_000, &TransferFeeConfig{BasisPoints: 10_000, MaximumFee: 777}, 999_223, 777},
		{"fee above amount clamps to zero", 10, &TransferFeeConfig{BasisPoints: 10_000, MaximumFee: 50}, 0, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			net, fee := CalculateTransferFeeExcludedAmount(decimal.NewFromInt(tc.amount), tc.cfg)
			require.True(t, decimal.NewFromInt(tc.wantNet).Equal(net), "net = %s", net)
			require.True(t, decimal.NewFromInt(tc.wantFee).Equal(fee), "fee = %s", fee)
		})
	}
}

func TestTransferFeeInvariants(t *testing.T) {
	amounts := []int64{0, 1, 99, 10_000, 123_456_789, 1 << 50}
	configs := []*TransferFeeConfig{
		{BasisPoints: 1, MaximumFee: 1 << 50},
		{BasisPoints: 250, MaximumFee: 10_000},
		{BasisPoints: 9_999, MaximumFee: 1 << 30},
	}

	for _, a := range amounts {
		amount := decimal.NewFromInt(a)
		for _, cfg := range configs {
			net, fee := CalculateTransferFeeExcludedAmount(amount, cfg)

			require.True(t, fee.Cmp(decimal.NewFromUint64(cfg.MaximumFee)) <= 0)
			require.True(t, fee.Cmp(amount) <= 0)
			require.True(t, net.Add(fee).Equal(amount), "net+fee must reconstruct the amount")
		}
	}
}
