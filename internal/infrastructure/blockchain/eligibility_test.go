package blockchain

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const ownerAddr = "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"

func balanceClient(balance *big.Int, err error) *EVMClient {
	return NewEVMClientWithBalances(big.NewInt(1), func(_ context.Context, token, owner string) (*big.Int, error) {
		return balance, err
	})
}

func TestBalanceEligibilityChecker_NativeBalance(t *testing.T) {
	min := big.NewInt(1000)

	checker := NewBalanceEligibilityChecker(balanceClient(big.NewInt(1500), nil), "", min, time.Second)
	ok, err := checker.IsEligible(context.Background(), ownerAddr)
	require.NoError(t, err)
	require.True(t, ok)

	checker = NewBalanceEligibilityChecker(balanceClient(big.NewInt(999), nil), "", min, time.Second)
	ok, err = checker.IsEligible(context.Background(), ownerAddr)
	require.NoError(t, err)
	require.False(t, ok)

	// Exactly the minimum qualifies.
	checker = NewBalanceEligibilityChecker(balanceClient(big.NewInt(1000), nil), "", min, time.Second)
	ok, err = checker.IsEligible(context.Background(), ownerAddr)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBalanceEligibilityChecker_TokenBalance(t *testing.T) {
	client := NewEVMClientWithBalances(big.NewInt(1), func(_ context.Context, token, owner string) (*big.Int, error) {
		if token == "" {
			t.Fatal("expected token balance lookup")
		}
		return big.NewInt(5), nil
	})

	checker := NewBalanceEligibilityChecker(client, "0x00000000000000000000000000000000000000aa", big.NewInt(5), time.Second)
	ok, err := checker.IsEligible(context.Background(), ownerAddr)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestBalanceEligibilityChecker_InvalidWallet(t *testing.T) {
	checker := NewBalanceEligibilityChecker(balanceClient(big.NewInt(1), nil), "", big.NewInt(0), time.Second)

	// Missing or garbage wallet metadata is an error, never a pass.
	_, err := checker.IsEligible(context.Background(), "")
	require.Error(t, err)

	_, err = checker.IsEligible(context.Background(), "not-a-wallet")
	require.Error(t, err)
}

func TestBalanceEligibilityChecker_RPCError(t *testing.T) {
	checker := NewBalanceEligibilityChecker(balanceClient(nil, errors.New("rpc timeout")), "", big.NewInt(0), time.Second)

	_, err := checker.IsEligible(context.Background(), ownerAddr)
	require.Error(t, err)
}

func TestAllowAllEligibilityChecker(t *testing.T) {
	ok, err := AllowAllEligibilityChecker{}.IsEligible(context.Background(), "anything")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestEVMClientWithBalances_Defaults(t *testing.T) {
	client := NewEVMClientWithBalances(nil, func(context.Context, string, string) (*big.Int, error) {
		return big.NewInt(7), nil
	})
	require.Equal(t, big.NewInt(1), client.ChainID())

	got, err := client.GetBalance(context.Background(), ownerAddr)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(7), got)

	got, err = client.GetTokenBalance(context.Background(), "0x00000000000000000000000000000000000000aa", ownerAddr)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(7), got)

	// Close on a balance-injected client is a no-op.
	client.Close()
}
