package marketplace

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

// MinBidStep is the minimum amount a new bid must exceed the current
// highest bid by, in base units of the listing's payment token.
var MinBidStep = big.NewInt(1)

// ListingId is the keccak256 hash over (asset contract, asset id,
// seller), so a seller holds at most one active listing per asset.
type ListingId string

func (id ListingId) String() string {
	return string(id)
}

func ToListingId(assetContract domain.Address, assetId domain.TokenId, seller domain.Address) ListingId {
	h := crypto.Keccak256(
		[]byte(assetContract.ToLowerStr()),
		[]byte(assetId.String()),
		[]byte(seller.ToLowerStr()),
	)
	return ListingId(hexutil.Encode(h))
}

type Listing struct {
	Id ListingId `json:"id" bson:"id"`

	// raw listing data
	Seller         domain.Address `json:"seller" bson:"seller"`
	AssetContract  domain.Address `json:"assetContract" bson:"assetContract"`
	AssetId        domain.TokenId `json:"assetId" bson:"assetId"`
	Price          string         `json:"price" bson:"price"`
	PayToken       domain.Address `json:"payToken" bson:"payToken"`
	IsAuction      bool           `json:"isAuction" bson:"isAuction"`
	AuctionEndTime *time.Time     `json:"auctionEndTime,omitempty" bson:"auctionEndTime,omitempty"`
	HighestBid     string         `json:"highestBid,omitempty" bson:"highestBid,omitempty"`
	HighestBidder  domain.Address `json:"highestBidder,omitempty" bson:"highestBidder,omitempty"`
	Claimed        bool           `json:"claimed" bson:"claimed"`

	// additional info
	DisplayPrice string     `json:"displayPrice" bson:"displayPrice"`
	CreatedAt    *time.Time `json:"createdAt" bson:"createdAt"`
}

func (l *Listing) LowerCase() {
	l.Seller = l.Seller.ToLower()
	l.AssetContract = l.AssetContract.ToLower()
	l.PayToken = l.PayToken.ToLower()
	l.HighestBidder = l.HighestBidder.ToLower()
}

// HasBids reports whether at least one bid has been accepted.
func (l *Listing) HasBids() bool {
	return !l.HighestBidder.IsZero()
}

// AuctionEnded reports whether the auction deadline has passed at `now`.
// Always false for fixed-price listings.
func (l *Listing) AuctionEnded(now time.Time) bool {
	if !l.IsAuction || l.AuctionEndTime == nil {
		return false
	}
	return !now.Before(*l.AuctionEndTime)
}

// Open reports whether the auction still accepts bids at `now`.
func (l *Listing) Open(now time.Time) bool {
	return l.IsAuction && !l.Claimed && !l.AuctionEnded(now)
}

type ListingPatchable struct {
	HighestBid    *string         `json:"highestBid" bson:"highestBid,omitempty"`
	HighestBidder *domain.Address `json:"highestBidder" bson:"highestBidder,omitempty"`
	Claimed       *bool           `json:"claimed" bson:"claimed,omitempty"`
}

type FindAllOptions struct {
	Seller        *domain.Address
	AssetContract *domain.Address
	PayToken      *domain.Address
	IsAuction     *bool
	Claimed       *bool
	Offset        *int32
	Limit         *int32
	SortBy        *string
	SortDir       *domain.SortDir
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = &seller
		return nil
	}
}

func WithAssetContract(assetContract domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.AssetContract = &assetContract
		return nil
	}
}

func WithPayToken(payToken domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.PayToken = &payToken
		return nil
	}
}

func WithIsAuction(isAuction bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.IsAuction = &isAuction
		return nil
	}
}

func WithClaimed(claimed bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Claimed = &claimed
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sortBy string, sortDir domain.SortDir) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortBy = &sortBy
		options.SortDir = &sortDir
		return nil
	}
}

type ListingRepo interface {
	FindOne(c ctx.Ctx, id ListingId) (*Listing, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Count(c ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	Insert(c ctx.Ctx, listing *Listing) error
	Update(c ctx.Ctx, id ListingId, patchable ListingPatchable) error
	Remove(c ctx.Ctx, id ListingId) error
}
