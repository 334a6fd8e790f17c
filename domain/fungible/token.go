package fungible

import (
	"time"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

// Token is a fungible token program instance. TaxBps of every
// transferred amount is diverted to TaxSink; the recipient receives
// the remainder. TaxBps zero makes it a plain token.
type Token struct {
	Address     domain.Address `json:"address" bson:"address"`
	Name        string         `json:"name" bson:"name"`
	Symbol      string         `json:"symbol" bson:"symbol"`
	Decimals    int32          `json:"decimals" bson:"decimals"`
	TotalSupply string         `json:"totalSupply" bson:"totalSupply"`
	TaxBps      int64          `json:"taxBps" bson:"taxBps"`
	TaxSink     domain.Address `json:"taxSink" bson:"taxSink"`
	Creator     domain.Address `json:"creator" bson:"creator"`
	CreatedAt   *time.Time     `json:"createdAt" bson:"createdAt"`
}

func (t *Token) LowerCase() {
	t.Address = t.Address.ToLower()
	t.TaxSink = t.TaxSink.ToLower()
	t.Creator = t.Creator.ToLower()
}

type FindAllOptions struct {
	Creator *domain.Address
	Offset  *int32
	Limit   *int32
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

func WithCreator(creator domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Creator = &creator
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

type TokenRepo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*Token, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Token, error)
	Insert(c ctx.Ctx, token *Token) error
	Patch(c ctx.Ctx, address domain.Address, patchable TokenPatchable) error
}

type TokenPatchable struct {
	TotalSupply *string `json:"totalSupply" bson:"totalSupply,omitempty"`
}
