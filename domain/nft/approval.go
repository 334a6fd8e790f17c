package nft

import (
	"time"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/domain"
)

// Approval grants Operator the right to move any of Owner's tokens
// in one class. The marketplace program relies on this to pull a
// seller's asset into custody.
type Approval struct {
	Contract  domain.Address `json:"contract" bson:"contract"`
	Owner     domain.Address `json:"owner" bson:"owner"`
	Operator  domain.Address `json:"operator" bson:"operator"`
	Approved  bool           `json:"approved" bson:"approved"`
	UpdatedAt *time.Time     `json:"updatedAt" bson:"updatedAt"`
}

func (a *Approval) ToId() ApprovalId {
	return ApprovalId{
		Contract: a.Contract,
		Owner:    a.Owner,
		Operator: a.Operator,
	}
}

type ApprovalId struct {
	Contract domain.Address `json:"contract" bson:"contract"`
	Owner    domain.Address `json:"owner" bson:"owner"`
	Operator domain.Address `json:"operator" bson:"operator"`
}

type ApprovalRepo interface {
	FindOne(c ctx.Ctx, id ApprovalId) (*Approval, error)
	Upsert(c ctx.Ctx, approval *Approval) error
}
