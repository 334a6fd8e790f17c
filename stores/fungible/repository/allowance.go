package repository

import (
	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/fungible"
	"github.com/mintora/goledger/service/query"
)

type allowanceImpl struct {
	q query.Mongo
}

func NewAllowanceRepo(q query.Mongo) fungible.AllowanceRepo {
	return &allowanceImpl{q}
}

func (im *allowanceImpl) FindOne(c ctx.Ctx, id fungible.AllowanceId) (*fungible.Allowance, error) {
	id.Token = id.Token.ToLower()
	id.Owner = id.Owner.ToLower()
	id.Spender = id.Spender.ToLower()

	var allowance fungible.Allowance
	if err := im.q.FindOne(c, domain.TableTokenAllowances, id, &allowance); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &allowance, nil
}

func (im *allowanceImpl) Upsert(c ctx.Ctx, allowance *fungible.Allowance) error {
	allowance.Token = allowance.Token.ToLower()
	allowance.Owner = allowance.Owner.ToLower()
	allowance.Spender = allowance.Spender.ToLower()
	if err := im.q.Upsert(c, domain.TableTokenAllowances, allowance.ToId(), allowance); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  allowance.ToId(),
		}).Error("failed to Upsert")
		return err
	}
	return nil
}
