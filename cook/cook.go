package cook

import (
	"errors"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

var (
	ErrPoolNotFound = errors.New("no amm pool for base mint")

	// ErrPoolNotReady covers pools whose vaults have not been seeded yet;
	// quoting against them would divide by zero.
	ErrPoolNotReady = errors.New("amm pool is not ready for trading")
)

// ProgramID is the deployed Cook AMM program.
var ProgramID = solana.MustPublicKeyFromBase58("HZdEaVTNZPbSFhCaCJaUmoLJZJ46dXaHhK5c9EN28n5h")

// Cook is the read-side client for the AMM program. All methods are
// snapshot-and-compute: they fetch live account state once and run the pure
// quoting math on it.
type Cook struct {
	rpcClient *rpc.Client
}

func NewCook(rpcClient *rpc.Client) (*Cook, error) {
	return &Cook{rpcClient: rpcClient}, nil
}
