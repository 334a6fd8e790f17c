package domain

import (
	"fmt"
	"math/big"
	"strings"
)

var (
	Big0 = big.NewInt(0)
	Big1 = big.NewInt(1)
)

type SortDir int8

const (
	SortDirAsc  = 1
	SortDirDesc = -1
)

type Address string

// EmptyAddress is the zero principal. As a payment token it selects the
// native currency.
const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// IsZero reports whether the address is absent or the zero sentinel.
func (a Address) IsZero() bool {
	return a.IsEmpty() || a.Equals(EmptyAddress)
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// ToHexString normalizes a decimal token id to 32 zero-padded hex bytes, so
// that derived identifiers do not depend on decimal formatting.
func (i TokenId) ToHexString() (string, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return "", ErrInvalidNumberFormat
	}
	return fmt.Sprintf("%064x", id), nil
}

// ParseAmount parses a non-negative base-10 amount in base units.
func ParseAmount(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrInvalidNumberFormat
	}
	if n.Sign() < 0 {
		return nil, ErrInvalidNumberFormat
	}
	return n, nil
}

// ToBigInt parses a slice of base-10 numbers.
func ToBigInt(nums []string) ([]*big.Int, error) {
	var bns []*big.Int
	for _, n := range nums {
		bn, ok := new(big.Int).SetString(n, 10)
		if !ok {
			return nil, ErrInvalidNumberFormat
		}
		bns = append(bns, bn)
	}
	return bns, nil
}
