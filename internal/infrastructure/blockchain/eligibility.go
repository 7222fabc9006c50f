package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// BalanceEligibilityChecker answers the "meets minimum qualifying
// balance" question with a spot balance read. Any communication failure
// is reported as an error; callers treat that as not eligible.
type BalanceEligibilityChecker struct {
	client       *EVMClient
	tokenAddress string // empty → native balance
	minBalance   *big.Int
	timeout      time.Duration
}

// NewBalanceEligibilityChecker creates a checker against one RPC endpoint.
// tokenAddress may be empty to check the native balance.
func NewBalanceEligibilityChecker(client *EVMClient, tokenAddress string, minBalance *big.Int, timeout time.Duration) *BalanceEligibilityChecker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &BalanceEligibilityChecker{
		client:       client,
		tokenAddress: tokenAddress,
		minBalance:   minBalance,
		timeout:      timeout,
	}
}

// IsEligible reports whether the wallet holds at least the configured
// minimum balance at this moment.
func (c *BalanceEligibilityChecker) IsEligible(ctx context.Context, wallet string) (bool, error) {
	if !common.IsHexAddress(wallet) {
		return false, fmt.Errorf("invalid wallet address %q", wallet)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var (
		balance *big.Int
		err     error
	)
	if c.tokenAddress == "" {
		balance, err = c.client.GetBalance(ctx, wallet)
	} else {
		balance, err = c.client.GetTokenBalance(ctx, c.tokenAddress, wallet)
	}
	if err != nil {
		return false, err
	}

	return balance.Cmp(c.minBalance) >= 0, nil
}

// AllowAllEligibilityChecker is used when the eligibility gate is disabled.
type AllowAllEligibilityChecker struct{}

func (AllowAllEligibilityChecker) IsEligible(ctx context.Context, wallet string) (bool, error) {
	return true, nil
}
