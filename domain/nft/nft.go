package nft

import (
	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

// UseCase is the non-fungible asset program covering both ownership
// models. TransferSingle moves a single-kind token, TransferUnits
// moves a quantity of a multi-kind token; both require the operator
// to be the current holder or an approved operator of the holder.
type UseCase interface {
	CreateClass(c ctx.Ctx, class *Class) (*Class, error)
	GetClass(c ctx.Ctx, contract domain.Address) (*Class, error)
	FindClasses(c ctx.Ctx, offset int32, limit int32) ([]*Class, error)

	// Mint issues tokens to `to`. Only the class creator may mint.
	// Single-kind classes require amount == 1 and a fresh token id.
	Mint(c ctx.Ctx, caller domain.Address, contract domain.Address, to domain.Address, tokenId domain.TokenId, amount int64, tokenUri string) error

	OwnerOf(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId) (domain.Address, error)
	BalanceOf(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId, owner domain.Address) (int64, error)
	FindItems(c ctx.Ctx, opts ...ItemFindAllOptionsFunc) ([]*Item, error)
	FindHoldings(c ctx.Ctx, opts ...HoldingFindAllOptionsFunc) ([]*Holding, error)

	SetApprovalForAll(c ctx.Ctx, owner domain.Address, contract domain.Address, operator domain.Address, approved bool) error
	IsApprovedForAll(c ctx.Ctx, contract domain.Address, owner domain.Address, operator domain.Address) (bool, error)

	TransferSingle(c ctx.Ctx, operator domain.Address, contract domain.Address, from domain.Address, to domain.Address, tokenId domain.TokenId) error
	TransferUnits(c ctx.Ctx, operator domain.Address, contract domain.Address, from domain.Address, to domain.Address, tokenId domain.TokenId, amount int64) error
}
