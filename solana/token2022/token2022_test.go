package token2022

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func buildTransferFeeExtension(t *testing.T, older, newer TransferFee) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	buf.Write(make([]byte, 37)) // leading mint bytes before the TLV region
	buf.Write(transferFeeConfigDiscriminator)
	buf.WriteByte(0) // config authority: none
	authority := solana.NewWallet().PublicKey()
	buf.WriteByte(1) // withdraw authority: some
	buf.Write(authority[:])
	require.NoError(t, binary.Write(buf, binary.LittleEndian, uint64(42))) // withheld
	for _, fee := range []TransferFee{older, newer} {
		require.NoError(t, binary.Write(buf, binary.LittleEndian, fee.Epoch))
		require.NoError(t, binary.Write(buf, binary.LittleEndian, fee.MaximumFee))
		require.NoError(t, binary.Write(buf, binary.LittleEndian, fee.BasisPoints))
	}
	return buf.Bytes()
}

func TestParseTransferFeeConfig(t *testing.T) {
	older := TransferFee{Epoch: 100, MaximumFee: 5_000, BasisPoints: 50}
	newer := TransferFee{Epoch: 200, MaximumFee: 10_000, BasisPoints: 100}

	cfg, err := parseTransferFeeConfig(buildTransferFeeExtension(t, older, newer))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Nil(t, cfg.TransferFeeConfigAuthority)
	require.NotNil(t, cfg.WithdrawWithheldAuthority)
	require.Equal(t, uint64(42), cfg.WithheldAmount)
	require.Equal(t, older, cfg.OlderTransferFee)
	require.Equal(t, newer, cfg.NewerTransferFee)
}

func TestParseTransferFeeConfigAbsent(t *testing.T) {
	cfg, err := parseTransferFeeConfig(make([]byte, 82))
	require.NoError(t, err)
	require.Nil(t, cfg)
}

func TestParseTransferFeeConfigTruncated(t *testing.T) {
	older := TransferFee{Epoch: 1, MaximumFee: 1, BasisPoints: 1}
	newer := TransferFee{Epoch: 2, MaximumFee: 2, BasisPoints: 2}
	data := buildTransferFeeExtension(t, older, newer)

	_, err := parseTransferFeeConfig(data[:len(data)-10])
	require.Error(t, err)
}

func TestGetEpochFee(t *testing.T) {
	cfg := &TransferFeeConfig{
		OlderTransferFee: TransferFee{Epoch: 100, BasisPoints: 50},
		NewerTransferFee: TransferFee{Epoch: 200, BasisPoints: 100},
	}

	require.Equal(t, uint16(50), GetEpochFee(cfg, 150).BasisPoints)
	require.Equal(t, uint16(100), GetEpochFee(cfg, 200).BasisPoints)
	require.Equal(t, uint16(100), GetEpochFee(cfg, 500).BasisPoints)
	require.Equal(t, uint16(0), GetEpochFee(nil, 500).BasisPoints)
}
