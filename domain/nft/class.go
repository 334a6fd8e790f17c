package nft

import (
	"time"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

// Kind selects the ownership model of an asset class.
type Kind string

const (
	// KindSingle is exclusive ownership, one owner per token id.
	KindSingle Kind = "single"
	// KindMulti is quantity ownership, many owners hold balances of
	// the same token id.
	KindMulti Kind = "multi"
)

func ValidKind(k Kind) bool {
	return k == KindSingle || k == KindMulti
}

type Class struct {
	Address   domain.Address `json:"address" bson:"address"`
	Kind      Kind           `json:"kind" bson:"kind"`
	Name      string         `json:"name" bson:"name"`
	Symbol    string         `json:"symbol" bson:"symbol"`
	Creator   domain.Address `json:"creator" bson:"creator"`
	CreatedAt *time.Time     `json:"createdAt" bson:"createdAt"`
}

func (c *Class) LowerCase() {
	c.Address = c.Address.ToLower()
	c.Creator = c.Creator.ToLower()
}

type ClassRepo interface {
	FindOne(c ctx.Ctx, address domain.Address) (*Class, error)
	FindAll(c ctx.Ctx, offset int32, limit int32) ([]*Class, error)
	Insert(c ctx.Ctx, class *Class) error
}
