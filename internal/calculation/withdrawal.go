package calculation

import (
	"github.com/retireplan/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// drawEpsilon absorbs floating rounding noise when deciding a need is met.
var drawEpsilon = decimal.New(1, -9)

// WithdrawalResult reports the outcome of one allocation pass: what each
// bucket contributed, the balances after the draws, and any unmet remainder.
type WithdrawalResult struct {
	Draws    map[domain.AccountKind]decimal.Decimal
	Balances domain.AccountBalances
	Unmet    decimal.Decimal
}

// Draw returns the amount taken from one bucket.
func (r WithdrawalResult) Draw(kind domain.AccountKind) decimal.Decimal {
	return r.Draws[kind]
}

// AllocateWithdrawal satisfies a non-negative cash need from the three
// buckets in the given priority order, clamping each take to the bucket's
// balance. The input balances are not modified; the allocation is a pure
// function so the engine and tests can call it freely.
func AllocateWithdrawal(
	balances domain.AccountBalances,
	need decimal.Decimal,
	order domain.WithdrawalOrder,
) WithdrawalResult {
	remaining := decimal.Max(decimal.Zero, need)
	result := WithdrawalResult{
		Draws: map[domain.AccountKind]decimal.Decimal{
			domain.AccountBrokerage: decimal.Zero,
			domain.AccountRoth:      decimal.Zero,
			domain.AccountIRA:       decimal.Zero,
		},
		Balances: balances,
	}

	for _, kind := range order {
		take := decimal.Min(result.Balances.Balance(kind), remaining)
		if take.LessThan(decimal.Zero) {
			take = decimal.Zero
		}
		result.Balances.Debit(kind, take)
		result.Draws[kind] = result.Draws[kind].Add(take)
		remaining = remaining.Sub(take)
		if remaining.LessThanOrEqual(drawEpsilon) {
			remaining = decimal.Zero
			break
		}
	}

	result.Unmet = remaining
	return result
}
