package repository

import (
	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/fungible"
	"github.com/mintora/goledger/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type balanceImpl struct {
	q query.Mongo
}

func NewBalanceRepo(q query.Mongo) fungible.BalanceRepo {
	return &balanceImpl{q}
}

func (im *balanceImpl) FindOne(c ctx.Ctx, id fungible.BalanceId) (*fungible.Balance, error) {
	id.Token = id.Token.ToLower()
	id.Owner = id.Owner.ToLower()

	var balance fungible.Balance
	if err := im.q.FindOne(c, domain.TableTokenBalances, id, &balance); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &balance, nil
}

func (im *balanceImpl) FindAllByOwner(c ctx.Ctx, owner domain.Address) ([]*fungible.Balance, error) {
	res := []*fungible.Balance{}
	qry := bson.M{"owner": owner.ToLower()}
	if err := im.q.Search(c, domain.TableTokenBalances, 0, 0, "token", qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
		}).Error("failed to Search")
		return nil, err
	}
	return res, nil
}

func (im *balanceImpl) Upsert(c ctx.Ctx, balance *fungible.Balance) error {
	balance.Token = balance.Token.ToLower()
	balance.Owner = balance.Owner.ToLower()
	if err := im.q.Upsert(c, domain.TableTokenBalances, balance.ToId(), balance); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  balance.ToId(),
		}).Error("failed to Upsert")
		return err
	}
	return nil
}
