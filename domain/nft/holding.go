package nft

import (
	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

// Holding is one owner's balance of one token id in a multi-kind
// class.
type Holding struct {
	Contract domain.Address `json:"contract" bson:"contract"`
	TokenId  domain.TokenId `json:"tokenId" bson:"tokenId"`
	Owner    domain.Address `json:"owner" bson:"owner"`
	Balance  int64          `json:"balance" bson:"balance"`
}

func (h *Holding) ToId() HoldingId {
	return HoldingId{
		Contract: h.Contract,
		TokenId:  h.TokenId,
		Owner:    h.Owner,
	}
}

type HoldingId struct {
	Contract domain.Address `json:"contract" bson:"contract"`
	TokenId  domain.TokenId `json:"tokenId" bson:"tokenId"`
	Owner    domain.Address `json:"owner" bson:"owner"`
}

type HoldingFindAllOptions struct {
	Contract *domain.Address
	TokenId  *domain.TokenId
	Owner    *domain.Address
}

type HoldingFindAllOptionsFunc func(*HoldingFindAllOptions) error

func GetHoldingFindAllOptions(opts ...HoldingFindAllOptionsFunc) (HoldingFindAllOptions, error) {
	res := HoldingFindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithHoldingContract(contract domain.Address) HoldingFindAllOptionsFunc {
	return func(options *HoldingFindAllOptions) error {
		options.Contract = contract.ToLowerPtr()
		return nil
	}
}

func WithHoldingTokenId(tokenId domain.TokenId) HoldingFindAllOptionsFunc {
	return func(options *HoldingFindAllOptions) error {
		options.TokenId = &tokenId
		return nil
	}
}

func WithHoldingOwner(owner domain.Address) HoldingFindAllOptionsFunc {
	return func(options *HoldingFindAllOptions) error {
		options.Owner = owner.ToLowerPtr()
		return nil
	}
}

type HoldingRepo interface {
	FindOne(c ctx.Ctx, id HoldingId) (*Holding, error)
	FindAll(c ctx.Ctx, opts ...HoldingFindAllOptionsFunc) ([]*Holding, error)
	// Increment adjusts the holding balance by value, creating the
	// holding when absent, and returns the balance after the change.
	Increment(c ctx.Ctx, id HoldingId, value int64) (int64, error)
}
