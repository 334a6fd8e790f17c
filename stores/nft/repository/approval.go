package repository

import (
	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/nft"
	"github.com/mintora/goledger/service/query"
)

type approvalImpl struct {
	q query.Mongo
}

func NewApprovalRepo(q query.Mongo) nft.ApprovalRepo {
	return &approvalImpl{q}
}

func (im *approvalImpl) FindOne(c ctx.Ctx, id nft.ApprovalId) (*nft.Approval, error) {
	var approval nft.Approval
	id.Contract = id.Contract.ToLower()
	id.Owner = id.Owner.ToLower()
	id.Operator = id.Operator.ToLower()
	if err := im.q.FindOne(c, domain.TableNftApprovals, id, &approval); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &approval, nil
}

func (im *approvalImpl) Upsert(c ctx.Ctx, approval *nft.Approval) error {
	approval.Contract = approval.Contract.ToLower()
	approval.Owner = approval.Owner.ToLower()
	approval.Operator = approval.Operator.ToLower()
	if err := im.q.Upsert(c, domain.TableNftApprovals, approval.ToId(), approval); err != nil {
		c.WithFields(log.Fields{
			"id":  approval.ToId(),
			"err": err,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
