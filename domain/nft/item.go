package nft

import (
	"time"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

// Item is a token of a single-kind class. Owner is the exclusive
// holder.
type Item struct {
	Contract  domain.Address `json:"contract" bson:"contract"`
	TokenId   domain.TokenId `json:"tokenId" bson:"tokenId"`
	Owner     domain.Address `json:"owner" bson:"owner"`
	TokenUri  string         `json:"tokenUri" bson:"tokenUri"`
	MintedAt  *time.Time     `json:"mintedAt" bson:"mintedAt"`
	UpdatedAt *time.Time     `json:"updatedAt" bson:"updatedAt"`
}

func (i *Item) ToId() ItemId {
	return ItemId{
		Contract: i.Contract,
		TokenId:  i.TokenId,
	}
}

type ItemId struct {
	Contract domain.Address `json:"contract" bson:"contract"`
	TokenId  domain.TokenId `json:"tokenId" bson:"tokenId"`
}

type ItemPatchable struct {
	Owner     *domain.Address `json:"owner" bson:"owner,omitempty"`
	UpdatedAt *time.Time      `json:"updatedAt" bson:"updatedAt,omitempty"`
}

type ItemFindAllOptions struct {
	Contract *domain.Address
	Owner    *domain.Address
	Offset   *int32
	Limit    *int32
}

type ItemFindAllOptionsFunc func(*ItemFindAllOptions) error

func GetItemFindAllOptions(opts ...ItemFindAllOptionsFunc) (ItemFindAllOptions, error) {
	res := ItemFindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithItemContract(contract domain.Address) ItemFindAllOptionsFunc {
	return func(options *ItemFindAllOptions) error {
		options.Contract = contract.ToLowerPtr()
		return nil
	}
}

func WithItemOwner(owner domain.Address) ItemFindAllOptionsFunc {
	return func(options *ItemFindAllOptions) error {
		options.Owner = owner.ToLowerPtr()
		return nil
	}
}

func WithItemPagination(offset int32, limit int32) ItemFindAllOptionsFunc {
	return func(options *ItemFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type ItemRepo interface {
	FindOne(c ctx.Ctx, id ItemId) (*Item, error)
	FindAll(c ctx.Ctx, opts ...ItemFindAllOptionsFunc) ([]*Item, error)
	Insert(c ctx.Ctx, item *Item) error
	Update(c ctx.Ctx, id ItemId, patchable ItemPatchable) error
}
