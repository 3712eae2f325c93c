package solana

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

func GetAccountInfo(ctx context.Context, rpcClient *rpc.Client, account solana.PublicKey) (*rpc.GetAccountInfoResult, error) {
	return rpcClient.GetAccountInfoWithOpts(ctx, account, &rpc.GetAccountInfoOpts{Commitment: rpc.CommitmentFinalized})
}

func GetMultipleAccountInfo(ctx context.Context, rpcClient *rpc.Client, accounts []solana.PublicKey) (*rpc.GetMultipleAccountsResult, error) {
	return rpcClient.GetMultipleAccountsWithOpts(ctx, accounts, &rpc.GetMultipleAccountsOpts{Commitment: rpc.CommitmentFinalized, Encoding: solana.EncodingBase64})
}

func GetCurrentEpoch(ctx context.Context, rpcClient *rpc.Client) (uint64, error) {
	epochInfo, err := rpcClient.GetEpochInfo(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return 0, err
	}
	return epochInfo.Epoch, nil
}

// GetMultipleToken decodes several mint accounts in one round trip. Entries
// for accounts that do not exist come back nil.
func GetMultipleToken(ctx context.Context, rpcClient *rpc.Client, mints ...solana.PublicKey) ([]*Token, error) {
	outs, err := GetMultipleAccountInfo(ctx, rpcClient, mints)
	if err != nil {
		return nil, err
	}
	list := make([]*Token, len(outs.Value))
	for i, out := range outs.Value {
		if out == nil {
			continue
		}
		tok, err := DecodeToken(out.Data.GetBinary(), out.Owner)
		if err != nil {
			return nil, err
		}
		list[i] = tok
	}
	return list, nil
}

// GetMultipleTokenAccount decodes several token accounts in one round trip.
func GetMultipleTokenAccount(ctx context.Context, rpcClient *rpc.Client, accounts ...solana.PublicKey) ([]*TokenAccount, error) {
	outs, err := GetMultipleAccountInfo(ctx, rpcClient, accounts)
	if err != nil {
		return nil, err
	}
	list := make([]*TokenAccount, len(outs.Value))
	for i, out := range outs.Value {
		if out == nil {
			continue
		}
		acc, err := DecodeTokenAccount(out.Data.GetBinary())
		if err != nil {
			return nil, err
		}
		list[i] = acc
	}
	return list, nil
}

// GenAccountTypeFilter builds a getProgramAccounts filter for a program that
// tags each account with a one-byte type at offset zero. An optional memcmp
// on a key at the given offset narrows the scan to one pool.
func GenAccountTypeFilter(accountType uint8, key solana.PublicKey, offset uint64) *rpc.GetProgramAccountsOpts {
	opt := &rpc.GetProgramAccountsOpts{
		Commitment: rpc.CommitmentFinalized,
		Encoding:   solana.EncodingBase64,
		Filters: []rpc.RPCFilter{
			{
				Memcmp: &rpc.RPCFilterMemcmp{
					Offset: 0,
					Bytes:  []byte{accountType},
				},
			},
		},
	}
	if key.Equals(solana.PublicKey{}) {
		return opt
	}
	opt.Filters = append(opt.Filters, rpc.RPCFilter{
		Memcmp: &rpc.RPCFilterMemcmp{
			Offset: offset,
			Bytes:  key[:],
		},
	})
	return opt
}
