package pricefmt

import (
	"math/big"

	"github.com/shopspring/decimal"

	bCtx "github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

// Formatter renders base-unit amounts as human readable decimal
// strings using the payment token's precision.
type Formatter interface {
	Display(ctx bCtx.Ctx, token domain.Address, value *big.Int) (decimal.Decimal, error)
	DisplayString(ctx bCtx.Ctx, token domain.Address, value *big.Int) (string, error)
}
