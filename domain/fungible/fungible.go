package fungible

import (
	"math/big"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

// UseCase is the fungible token program. Transfer and TransferFrom
// apply the token's transfer tax; TransferFrom additionally debits
// the spender's allowance by the full pre-tax amount.
type UseCase interface {
	Create(c ctx.Ctx, token *Token, initialSupply *big.Int) (*Token, error)
	// Mint expands the supply. Only the token creator may call it.
	Mint(c ctx.Ctx, caller domain.Address, token domain.Address, to domain.Address, amount *big.Int) error
	Get(c ctx.Ctx, address domain.Address) (*Token, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Token, error)

	BalanceOf(c ctx.Ctx, token domain.Address, owner domain.Address) (*big.Int, error)
	Allowance(c ctx.Ctx, token domain.Address, owner domain.Address, spender domain.Address) (*big.Int, error)
	Approve(c ctx.Ctx, owner domain.Address, token domain.Address, spender domain.Address, amount *big.Int) error
	Transfer(c ctx.Ctx, token domain.Address, from domain.Address, to domain.Address, amount *big.Int) error
	TransferFrom(c ctx.Ctx, spender domain.Address, token domain.Address, from domain.Address, to domain.Address, amount *big.Int) error
}
