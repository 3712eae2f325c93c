// Package token2022 reads the transfer-fee extension off token-2022 mint
// accounts. Fee-bearing mints levy this fee on every transfer, before any
// pool swap fee applies.
package token2022

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// transferFeeConfigDiscriminator locates the TransferFeeConfig extension
// inside the mint account's TLV region.
var transferFeeConfigDiscriminator = []byte{0xad, 0x65, 0x2b, 0x54, 0x0e, 0x4d, 0x0d, 0x27}

// TransferFee is one epoch-scheduled fee entry.
type TransferFee struct {
	Epoch       uint64
	MaximumFee  uint64
	BasisPoints uint16
}

// TransferFeeConfig holds both scheduled fee entries; which one applies
// depends on the current epoch.
type TransferFeeConfig struct {
	TransferFeeConfigAuthority *solana.PublicKey
	WithdrawWithheldAuthority  *solana.PublicKey
	WithheldAmount             uint64
	OlderTransferFee           TransferFee
	NewerTransferFee           TransferFee
}

// GetTransferFeeConfig fetches a mint and parses its transfer-fee extension.
// Mints without the extension return (nil, nil).
func GetTransferFeeConfig(ctx context.Context, rpcClient *rpc.Client, mint solana.PublicKey) (*TransferFeeConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()
	out, err := rpcClient.GetAccountInfoWithOpts(ctx, mint, &rpc.GetAccountInfoOpts{Commitment: rpc.CommitmentFinalized})
	if err != nil {
		return nil, err
	}
	return parseTransferFeeConfig(out.GetBinary())
}

// GetEpochFee selects the fee entry active at the given epoch. A nil config
// means the mint charges nothing.
func GetEpochFee(cfg *TransferFeeConfig, currentEpoch uint64) TransferFee {
	if cfg == nil {
		return TransferFee{}
	}
	if currentEpoch >= cfg.NewerTransferFee.Epoch {
		return cfg.NewerTransferFee
	}
	return cfg.OlderTransferFee
}

type cursor struct {
	buf []byte
}

func (c *cursor) optionPubkey() (*solana.PublicKey, error) {
	if len(c.buf) < 1 {
		return nil, errors.New("data too short for COption tag")
	}
	switch c.buf[0] {
	case 0:
		c.buf = c.buf[1:]
		return nil, nil
	case 1:
		if len(c.buf) < 33 {
			return nil, errors.New("data too short for Pubkey")
		}
		key := solana.PublicKeyFromBytes(c.buf[1:33])
		c.buf = c.buf[33:]
		return &key, nil
	default:
		return nil, errors.New("invalid COption tag")
	}
}

func (c *cursor) u64() (uint64, error) {
	if len(c.buf) < 8 {
		return 0, errors.New("data too short for u64")
	}
	v := binary.LittleEndian.Uint64(c.buf[:8])
	c.buf = c.buf[8:]
	return v, nil
}

func (c *cursor) transferFee() (TransferFee, error) {
	if len(c.buf) < 18 {
		return TransferFee{}, errors.New("data too short for TransferFee")
	}
	fee := TransferFee{
		Epoch:       binary.LittleEndian.Uint64(c.buf[:8]),
		MaximumFee:  binary.LittleEndian.Uint64(c.buf[8:16]),
		BasisPoints: binary.LittleEndian.Uint16(c.buf[16:18]),
	}
	c.buf = c.buf[18:]
	return fee, nil
}

func parseTransferFeeConfig(data []byte) (*TransferFeeConfig, error) {
	idx := bytes.Index(data, transferFeeConfigDiscriminator)
	if idx < 0 {
		return nil, nil
	}

	c := &cursor{buf: data[idx+8:]}
	cfg := &TransferFeeConfig{}

	var err error
	if cfg.TransferFeeConfigAuthority, err = c.optionPubkey(); err != nil {
		return nil, err
	}
	if cfg.WithdrawWithheldAuthority, err = c.optionPubkey(); err != nil {
		return nil, err
	}
	if cfg.WithheldAmount, err = c.u64(); err != nil {
		return nil, err
	}
	if cfg.OlderTransferFee, err = c.transferFee(); err != nil {
		return nil, err
	}
	if cfg.NewerTransferFee, err = c.transferFee(); err != nil {
		return nil, err
	}
	return cfg, nil
}
