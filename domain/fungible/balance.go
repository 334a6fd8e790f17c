package fungible

import (
	"math/big"
	"time"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

// Balance is one owner's holding of one token, in base units.
type Balance struct {
	Token     domain.Address `json:"token" bson:"token"`
	Owner     domain.Address `json:"owner" bson:"owner"`
	Balance   string         `json:"balance" bson:"balance"`
	UpdatedAt *time.Time     `json:"updatedAt" bson:"updatedAt"`
}

func (b *Balance) ToId() BalanceId {
	return BalanceId{
		Token: b.Token,
		Owner: b.Owner,
	}
}

func (b *Balance) BalanceBig() (*big.Int, error) {
	return domain.ParseAmount(b.Balance)
}

type BalanceId struct {
	Token domain.Address `json:"token" bson:"token"`
	Owner domain.Address `json:"owner" bson:"owner"`
}

type BalanceRepo interface {
	FindOne(c ctx.Ctx, id BalanceId) (*Balance, error)
	FindAllByOwner(c ctx.Ctx, owner domain.Address) ([]*Balance, error)
	Upsert(c ctx.Ctx, balance *Balance) error
}

// Allowance lets Spender pull up to Amount of Owner's tokens.
type Allowance struct {
	Token     domain.Address `json:"token" bson:"token"`
	Owner     domain.Address `json:"owner" bson:"owner"`
	Spender   domain.Address `json:"spender" bson:"spender"`
	Amount    string         `json:"amount" bson:"amount"`
	UpdatedAt *time.Time     `json:"updatedAt" bson:"updatedAt"`
}

func (a *Allowance) ToId() AllowanceId {
	return AllowanceId{
		Token:   a.Token,
		Owner:   a.Owner,
		Spender: a.Spender,
	}
}

type AllowanceId struct {
	Token   domain.Address `json:"token" bson:"token"`
	Owner   domain.Address `json:"owner" bson:"owner"`
	Spender domain.Address `json:"spender" bson:"spender"`
}

type AllowanceRepo interface {
	FindOne(c ctx.Ctx, id AllowanceId) (*Allowance, error)
	Upsert(c ctx.Ctx, allowance *Allowance) error
}
