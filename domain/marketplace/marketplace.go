package marketplace

import (
	"math/big"
	"time"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

type ListingResult struct {
	Listings []*Listing `json:"listings"`
	Count    int        `json:"count"`
}

// UseCase is the marketplace program. Every value-moving operation
// takes the calling principal explicitly, runs to completion before
// the next call is admitted, and either fully commits or fully
// reverts.
type UseCase interface {
	List(c ctx.Ctx, seller domain.Address, assetContract domain.Address, assetId domain.TokenId, price *big.Int, payToken domain.Address, isAuction bool, auctionDuration time.Duration) (*Listing, error)
	Buy(c ctx.Ctx, buyer domain.Address, id ListingId, attachedValue *big.Int) error
	PlaceBid(c ctx.Ctx, bidder domain.Address, id ListingId, amount *big.Int, attachedValue *big.Int) error
	Claim(c ctx.Ctx, claimer domain.Address, id ListingId) error
	Cancel(c ctx.Ctx, caller domain.Address, id ListingId) error

	Get(c ctx.Ctx, id ListingId) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) (*ListingResult, error)

	SetBuyerFeeBps(c ctx.Ctx, caller domain.Address, bps int64) error
	SetSellerFeeBps(c ctx.Ctx, caller domain.Address, bps int64) error
	SetTreasury(c ctx.Ctx, caller domain.Address, treasury domain.Address) error
	BlacklistUser(c ctx.Ctx, caller domain.Address, user domain.Address) error
	RemoveUserFromBlacklist(c ctx.Ctx, caller domain.Address, user domain.Address) error
	GetSettings(c ctx.Ctx) (*Settings, error)
	GetBlacklist(c ctx.Ctx) ([]*BlacklistEntry, error)
}
