package solana

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func parsedTokenAccount(mint string, amount uint64) []byte {
	return []byte(fmt.Sprintf(
		`{"parsed":{"info":{"mint":%q,"tokenAmount":{"amount":"%d"}},"type":"account"},"program":"spl-token"}`,
		mint, amount,
	))
}

func TestAccumulateBalanceSumsPerMint(t *testing.T) {
	balances := make(map[string]uint64)

	// an ATA plus an auxiliary account for the same mint
	accumulateBalance(balances, parsedTokenAccount("mintA", 150))
	accumulateBalance(balances, parsedTokenAccount("mintA", 50))
	accumulateBalance(balances, parsedTokenAccount("mintB", 7))

	require.Equal(t, uint64(200), balances["mintA"])
	require.Equal(t, uint64(7), balances["mintB"])
}

func TestAccumulateBalanceSkipsEmpty(t *testing.T) {
	balances := make(map[string]uint64)

	accumulateBalance(balances, parsedTokenAccount("mintA", 0))
	accumulateBalance(balances, []byte(`{"parsed":{"info":{"tokenAmount":{"amount":"5"}}}}`))
	accumulateBalance(balances, []byte(`not json`))

	require.Empty(t, balances)
}
