// Package solana carries the account decoding and RPC read helpers shared by
// the cook client. Everything here is read-only; transaction building is out
// of this module's scope.
package solana

import (
	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
)

// Token is a decoded SPL mint together with its owning program, which is how
// token-2022 mints are told apart from classic ones.
type Token struct {
	token.Mint
	Owner solana.PublicKey
}

func DecodeToken(data []byte, owner solana.PublicKey) (*Token, error) {
	mint := token.Mint{}
	if err := mint.Decode(data); err != nil {
		return nil, err
	}
	return &Token{Mint: mint, Owner: owner}, nil
}

// TokenAccount is the subset of the SPL token account state the quoting
// layer reads: the mint it belongs to and the raw amount it holds.
type TokenAccount struct {
	Mint   solana.PublicKey
	Owner  solana.PublicKey
	Amount uint64
}

// tokenAccountLayout matches the on-chain SPL token account byte layout.
type tokenAccountLayout struct {
	Mint                 solana.PublicKey
	Owner                solana.PublicKey
	Amount               uint64
	DelegateOption       uint32
	Delegate             solana.PublicKey
	State                uint8
	IsNativeOption       uint32
	IsNative             uint64
	DelegatedAmount      uint64
	CloseAuthorityOption uint32
	CloseAuthority       solana.PublicKey
}

func DecodeTokenAccount(data []byte) (*TokenAccount, error) {
	raw := &tokenAccountLayout{}
	if err := binary.NewBinDecoder(data).Decode(raw); err != nil {
		return nil, err
	}
	return &TokenAccount{
		Mint:   raw.Mint,
		Owner:  raw.Owner,
		Amount: raw.Amount,
	}, nil
}
