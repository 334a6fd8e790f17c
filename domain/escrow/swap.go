package escrow

import (
	"math/big"
	"time"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

type Status string

const (
	StatusOpen      Status = "open"
	StatusExecuted  Status = "executed"
	StatusCancelled Status = "cancelled"
)

// Swap is a peer-to-peer exchange of two fungible amounts. The maker
// side is held in escrow custody from creation until execution or
// cancellation. A zero token address denotes the native currency.
type Swap struct {
	SwapId      string         `json:"swapId" bson:"swapId"`
	Maker       domain.Address `json:"maker" bson:"maker"`
	MakerToken  domain.Address `json:"makerToken" bson:"makerToken"`
	MakerAmount string         `json:"makerAmount" bson:"makerAmount"`
	TakerToken  domain.Address `json:"takerToken" bson:"takerToken"`
	TakerAmount string         `json:"takerAmount" bson:"takerAmount"`
	// Taker reserves the swap for one counterparty. Zero leaves the
	// swap open to any caller.
	Taker      domain.Address `json:"taker,omitempty" bson:"taker,omitempty"`
	Status     Status         `json:"status" bson:"status"`
	ExecutedBy domain.Address `json:"executedBy,omitempty" bson:"executedBy,omitempty"`
	CreatedAt  *time.Time     `json:"createdAt" bson:"createdAt"`
	ClosedAt   *time.Time     `json:"closedAt,omitempty" bson:"closedAt,omitempty"`
}

func (s *Swap) LowerCase() {
	s.Maker = s.Maker.ToLower()
	s.MakerToken = s.MakerToken.ToLower()
	s.TakerToken = s.TakerToken.ToLower()
	s.Taker = s.Taker.ToLower()
	s.ExecutedBy = s.ExecutedBy.ToLower()
}

type SwapPatchable struct {
	Status     *Status         `json:"status" bson:"status,omitempty"`
	ExecutedBy *domain.Address `json:"executedBy" bson:"executedBy,omitempty"`
	ClosedAt   *time.Time      `json:"closedAt" bson:"closedAt,omitempty"`
}

type FindAllOptions struct {
	Maker  *domain.Address
	Status *Status
	Offset *int32
	Limit  *int32
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

func WithMaker(maker domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Maker = maker.ToLowerPtr()
		return nil
	}
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
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

type SwapRepo interface {
	FindOne(c ctx.Ctx, swapId string) (*Swap, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Swap, error)
	Insert(c ctx.Ctx, swap *Swap) error
	Update(c ctx.Ctx, swapId string, patchable SwapPatchable) error
}

type UseCase interface {
	Create(c ctx.Ctx, maker domain.Address, makerToken domain.Address, makerAmount *big.Int, takerToken domain.Address, takerAmount *big.Int, taker domain.Address, attachedValue *big.Int) (*Swap, error)
	Execute(c ctx.Ctx, caller domain.Address, swapId string, attachedValue *big.Int) error
	Cancel(c ctx.Ctx, caller domain.Address, swapId string) error

	Get(c ctx.Ctx, swapId string) (*Swap, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Swap, error)
}
