package cook

import (
	"context"

	"github.com/daoplays/LetsCook-sub002/cook/cook_amm"
	solanago "github.com/daoplays/LetsCook-sub002/solana"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// accountTypeAMM is the program's one-byte tag for AMM accounts.
const accountTypeAMM = 6

// ammBaseMintOffset is where the base mint sits in the account: behind the
// type tag and the creator key.
const ammBaseMintOffset = 1 + 32

// ammLayout matches the on-chain AMM account byte layout.
type ammLayout struct {
	AccountType        uint8
	Creator            solana.PublicKey
	BaseMint           solana.PublicKey
	QuoteMint          solana.PublicKey
	LPMint             solana.PublicKey
	BaseVault          solana.PublicKey
	QuoteVault         solana.PublicKey
	Fee                uint32
	StartTime          int64
	ScalingActive      uint8
	LiquidityThreshold uint64
	LiquidityScalar    uint32
}

// Pool is a point-in-time snapshot of one AMM pool: the decoded program
// account plus the vault reserves and mint state it references. AMM is the
// assembled math view the quoting engine consumes.
type Pool struct {
	Address    solana.PublicKey
	Creator    solana.PublicKey
	BaseMint   solana.PublicKey
	QuoteMint  solana.PublicKey
	LPMint     solana.PublicKey
	BaseVault  solana.PublicKey
	QuoteVault solana.PublicKey
	StartTime  int64

	BaseToken  *solanago.Token
	QuoteToken *solanago.Token

	AMM *cook_amm.Pool
}

func decodeAMMLayout(data []byte) (*ammLayout, error) {
	layout := &ammLayout{}
	if err := binary.NewBinDecoder(data).Decode(layout); err != nil {
		return nil, err
	}
	return layout, nil
}

// GetPoolByBaseMint locates the pool trading a base mint and assembles its
// quoting snapshot: two further round trips fetch the three mints and the
// two vault balances.
func GetPoolByBaseMint(ctx context.Context, rpcClient *rpc.Client, baseMint solana.PublicKey) (*Pool, error) {
	accounts, err := rpcClient.GetProgramAccountsWithOpts(
		ctx,
		ProgramID,
		solanago.GenAccountTypeFilter(accountTypeAMM, baseMint, ammBaseMintOffset),
	)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, ErrPoolNotFound
	}

	layout, err := decodeAMMLayout(accounts[0].Account.Data.GetBinary())
	if err != nil {
		return nil, err
	}

	tokens, err := solanago.GetMultipleToken(ctx, rpcClient, layout.BaseMint, layout.QuoteMint, layout.LPMint)
	if err != nil {
		return nil, err
	}
	if tokens[0] == nil || tokens[1] == nil || tokens[2] == nil {
		return nil, ErrPoolNotReady
	}

	vaults, err := solanago.GetMultipleTokenAccount(ctx, rpcClient, layout.BaseVault, layout.QuoteVault)
	if err != nil {
		return nil, err
	}
	if vaults[0] == nil || vaults[1] == nil {
		return nil, ErrPoolNotReady
	}

	return &Pool{
		Address:    accounts[0].Pubkey,
		Creator:    layout.Creator,
		BaseMint:   layout.BaseMint,
		QuoteMint:  layout.QuoteMint,
		LPMint:     layout.LPMint,
		BaseVault:  layout.BaseVault,
		QuoteVault: layout.QuoteVault,
		StartTime:  layout.StartTime,
		BaseToken:  tokens[0],
		QuoteToken: tokens[1],
		AMM: &cook_amm.Pool{
			BaseReserve:   vaults[0].Amount,
			QuoteReserve:  vaults[1].Amount,
			BaseDecimals:  tokens[0].Decimals,
			QuoteDecimals: tokens[1].Decimals,
			Fee:           layout.Fee,
			LPSupply:      tokens[2].Supply,
			Scaling: cook_amm.LiquidityScaling{
				Active:    layout.ScalingActive != 0,
				Threshold: layout.LiquidityThreshold,
				Scalar:    layout.LiquidityScalar,
			},
		},
	}, nil
}

// GetPoolByBaseMint fetches the pool snapshot for a base mint.
func (m *Cook) GetPoolByBaseMint(ctx context.Context, baseMint solana.PublicKey) (*Pool, error) {
	return GetPoolByBaseMint(ctx, m.rpcClient, baseMint)
}
