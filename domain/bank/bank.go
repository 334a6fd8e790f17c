package bank

import (
	"math/big"
	"time"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

// NativeDecimals is the display precision of the native currency.
const NativeDecimals = 18

// Account is a native currency account. Balance is a non-negative
// base-10 integer string in base units.
type Account struct {
	Address   domain.Address `json:"address" bson:"address"`
	Balance   string         `json:"balance" bson:"balance"`
	UpdatedAt *time.Time     `json:"updatedAt" bson:"updatedAt"`
}

func (a *Account) BalanceBig() (*big.Int, error) {
	return domain.ParseAmount(a.Balance)
}

type Repo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*Account, error)
	FindAll(c ctx.Ctx, offset int32, limit int32) ([]*Account, error)
	Upsert(c ctx.Ctx, account *Account) error
}

type UseCase interface {
	BalanceOf(c ctx.Ctx, address domain.Address) (*big.Int, error)
	// Mint credits newly issued native currency to `to`. Only the
	// configured minter principal may call it.
	Mint(c ctx.Ctx, caller domain.Address, to domain.Address, amount *big.Int) error
	Transfer(c ctx.Ctx, from domain.Address, to domain.Address, amount *big.Int) error
}
