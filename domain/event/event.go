package event

import (
	"time"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

type Type string

const (
	TypeListed                   Type = "listed"
	TypeBought                   Type = "bought"
	TypeBidPlaced                Type = "bidPlaced"
	TypeClaimed                  Type = "claimed"
	TypeListingCancelled         Type = "listingCancelled"
	TypeBuyerFeeUpdated          Type = "buyerFeePercentageUpdated"
	TypeSellerFeeUpdated         Type = "sellerFeePercentageUpdated"
	TypeUserBlacklisted          Type = "userBlacklisted"
	TypeUserRemovedFromBlacklist Type = "userRemovedFromBlacklist"
	TypeSwapCreated              Type = "swapCreated"
	TypeSwapExecuted             Type = "swapExecuted"
	TypeSwapCancelled            Type = "swapCancelled"
)

// Event is one record of the append-only program event log. Seq is
// assigned from a monotonic counter inside the emitting call, so log
// order equals execution order. Payload fields are filled per type.
type Event struct {
	Seq     int64  `json:"seq" bson:"seq"`
	EventId string `json:"eventId" bson:"eventId"`
	Type    Type   `json:"type" bson:"type"`

	// subject
	ListingId string         `json:"listingId,omitempty" bson:"listingId,omitempty"`
	SwapId    string         `json:"swapId,omitempty" bson:"swapId,omitempty"`
	Account   domain.Address `json:"account,omitempty" bson:"account,omitempty"`

	// listing snapshot. A buy deletes the listing, so bought and
	// claimed records carry the snapshot themselves.
	Seller         domain.Address `json:"seller,omitempty" bson:"seller,omitempty"`
	AssetContract  domain.Address `json:"assetContract,omitempty" bson:"assetContract,omitempty"`
	AssetId        domain.TokenId `json:"assetId,omitempty" bson:"assetId,omitempty"`
	Price          string         `json:"price,omitempty" bson:"price,omitempty"`
	PayToken       domain.Address `json:"payToken,omitempty" bson:"payToken,omitempty"`
	IsAuction      *bool          `json:"isAuction,omitempty" bson:"isAuction,omitempty"`
	AuctionEndTime *time.Time     `json:"auctionEndTime,omitempty" bson:"auctionEndTime,omitempty"`
	Winner         domain.Address `json:"winner,omitempty" bson:"winner,omitempty"`

	Amount string `json:"amount,omitempty" bson:"amount,omitempty"`
	FeeBps *int64 `json:"feeBps,omitempty" bson:"feeBps,omitempty"`

	CreatedAt *time.Time `json:"createdAt" bson:"createdAt"`
}

type FindAllOptions struct {
	Type      *Type
	ListingId *string
	SwapId    *string
	Account   *domain.Address
	SeqGT     *int64
	Offset    *int32
	Limit     *int32
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

func WithType(t Type) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Type = &t
		return nil
	}
}

func WithListingId(listingId string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ListingId = &listingId
		return nil
	}
}

func WithSwapId(swapId string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SwapId = &swapId
		return nil
	}
}

func WithAccount(account domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Account = account.ToLowerPtr()
		return nil
	}
}

func WithSeqGT(seq int64) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SeqGT = &seq
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

type Repo interface {
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Event, error)
	Count(c ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	// NextSeq draws the next value from the event sequence counter.
	NextSeq(c ctx.Ctx) (int64, error)
	// LatestSeq reads the counter without drawing from it. Zero when
	// no event has ever been emitted.
	LatestSeq(c ctx.Ctx) (int64, error)
	Insert(c ctx.Ctx, ev *Event) error
}

type UseCase interface {
	// Emit assigns Seq, EventId and CreatedAt, then appends the
	// record. It is called inside the emitting operation, so a
	// rolled-back call leaves no event behind.
	Emit(c ctx.Ctx, ev *Event) (*Event, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Event, error)
	Count(c ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	LatestSeq(c ctx.Ctx) (int64, error)
}
