package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountKind identifies one of the three withdrawal buckets.
type AccountKind int

const (
	AccountBrokerage AccountKind = iota
	AccountRoth
	AccountIRA
)

// String returns the canonical bucket name used in config files and output.
func (k AccountKind) String() string {
	switch k {
	case AccountBrokerage:
		return "Brokerage"
	case AccountRoth:
		return "Roth"
	case AccountIRA:
		return "IRA"
	}
	return fmt.Sprintf("AccountKind(%d)", int(k))
}

// ParseAccountKind parses a bucket name. Matching is case-insensitive.
func ParseAccountKind(s string) (AccountKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "brokerage":
		return AccountBrokerage, nil
	case "roth":
		return AccountRoth, nil
	case "ira":
		return AccountIRA, nil
	}
	return 0, fmt.Errorf("unknown account kind %q (must be Brokerage, Roth, or IRA)", s)
}

// WithdrawalOrder is a fixed permutation of the three buckets. Cash needs are
// satisfied from the first bucket before touching the second.
type WithdrawalOrder [3]AccountKind

// DefaultWithdrawalOrder drains the IRA first to reduce future RMDs.
var DefaultWithdrawalOrder = WithdrawalOrder{AccountIRA, AccountBrokerage, AccountRoth}

// ParseWithdrawalOrder parses a comma-separated list of the three bucket
// names, e.g. "Brokerage, Roth, IRA". Each bucket must appear exactly once.
func ParseWithdrawalOrder(s string) (WithdrawalOrder, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return WithdrawalOrder{}, fmt.Errorf("draw order %q must list exactly three accounts", s)
	}
	var order WithdrawalOrder
	var seen [3]bool
	for i, part := range parts {
		kind, err := ParseAccountKind(part)
		if err != nil {
			return WithdrawalOrder{}, fmt.Errorf("draw order: %w", err)
		}
		if seen[kind] {
			return WithdrawalOrder{}, fmt.Errorf("draw order %q lists %s twice", s, kind)
		}
		seen[kind] = true
		order[i] = kind
	}
	return order, nil
}

// String renders the order in config-file form.
func (o WithdrawalOrder) String() string {
	return fmt.Sprintf("%s, %s, %s", o[0], o[1], o[2])
}

// AccountBalances holds the three running balances. The engine owns the only
// mutable copy during a run; everything else receives values.
type AccountBalances struct {
	Brokerage decimal.Decimal
	Roth      decimal.Decimal
	IRA       decimal.Decimal
}

// Balance returns the balance for one bucket.
func (b AccountBalances) Balance(kind AccountKind) decimal.Decimal {
	switch kind {
	case AccountBrokerage:
		return b.Brokerage
	case AccountRoth:
		return b.Roth
	default:
		return b.IRA
	}
}

// Debit subtracts amount from one bucket.
func (b *AccountBalances) Debit(kind AccountKind, amount decimal.Decimal) {
	switch kind {
	case AccountBrokerage:
		b.Brokerage = b.Brokerage.Sub(amount)
	case AccountRoth:
		b.Roth = b.Roth.Sub(amount)
	default:
		b.IRA = b.IRA.Sub(amount)
	}
}

// Credit adds amount to one bucket.
func (b *AccountBalances) Credit(kind AccountKind, amount decimal.Decimal) {
	switch kind {
	case AccountBrokerage:
		b.Brokerage = b.Brokerage.Add(amount)
	case AccountRoth:
		b.Roth = b.Roth.Add(amount)
	default:
		b.IRA = b.IRA.Add(amount)
	}
}

// Total returns the sum of all three balances.
func (b AccountBalances) Total() decimal.Decimal {
	return b.Brokerage.Add(b.Roth).Add(b.IRA)
}
