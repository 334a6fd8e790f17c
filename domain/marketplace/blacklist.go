package marketplace

import (
	"time"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

// BlacklistEntry marks a principal denied from every value-moving
// entry point. Read-only queries are not gated.
type BlacklistEntry struct {
	Address   domain.Address `json:"address" bson:"address"`
	CreatedAt *time.Time     `json:"createdAt" bson:"createdAt"`
}

type BlacklistRepo interface {
	FindAll(c ctx.Ctx) ([]*BlacklistEntry, error)
	FindOne(c ctx.Ctx, address domain.Address) (*BlacklistEntry, error)
	Create(c ctx.Ctx, entry BlacklistEntry) error
	Delete(c ctx.Ctx, address domain.Address) error
}
