package solana

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/tidwall/gjson"
)

// MintBalances returns the raw token holdings of a wallet keyed by mint,
// reading the jsonParsed account form so token-2022 and classic accounts
// come back in one shape. A wallet can hold several accounts for the same
// mint, so amounts are summed per mint. Empty accounts are skipped.
func MintBalances(ctx context.Context, rpcClient *rpc.Client, owner solana.PublicKey, programID solana.PublicKey) (map[string]uint64, error) {
	resp, err := rpcClient.GetTokenAccountsByOwner(ctx, owner, &rpc.GetTokenAccountsConfig{
		ProgramId: &programID,
	}, &rpc.GetTokenAccountsOpts{
		Encoding:   solana.EncodingJSONParsed,
		Commitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		return nil, err
	}

	balances := make(map[string]uint64)
	for _, v := range resp.Value {
		accumulateBalance(balances, v.Account.Data.GetRawJSON())
	}
	return balances, nil
}

func accumulateBalance(balances map[string]uint64, raw []byte) {
	mint := gjson.GetBytes(raw, "parsed.info.mint").String()
	amount := gjson.GetBytes(raw, "parsed.info.tokenAmount.amount").Uint()
	if mint == "" || amount == 0 {
		return
	}
	balances[mint] += amount
}
