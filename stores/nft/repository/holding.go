package repository

import (
	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/nft"
	"github.com/mintora/goledger/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type holdingImpl struct {
	q query.Mongo
}

func NewHoldingRepo(q query.Mongo) nft.HoldingRepo {
	return &holdingImpl{q}
}

func (im *holdingImpl) FindOne(c ctx.Ctx, id nft.HoldingId) (*nft.Holding, error) {
	var holding nft.Holding
	id.Contract = id.Contract.ToLower()
	id.Owner = id.Owner.ToLower()
	if err := im.q.FindOne(c, domain.TableNftHoldings, id, &holding); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &holding, nil
}

func (im *holdingImpl) FindAll(c ctx.Ctx, opts ...nft.HoldingFindAllOptionsFunc) ([]*nft.Holding, error) {
	options, err := nft.GetHoldingFindAllOptions(opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to GetHoldingFindAllOptions")
		return nil, err
	}

	qry := bson.M{}

	if options.Contract != nil {
		qry["contract"] = *options.Contract
	}

	if options.TokenId != nil {
		qry["tokenId"] = *options.TokenId
	}

	if options.Owner != nil {
		qry["owner"] = *options.Owner
	}

	res := []*nft.Holding{}
	if err := im.q.Search(c, domain.TableNftHoldings, 0, 0, "_id", qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *holdingImpl) Increment(c ctx.Ctx, id nft.HoldingId, value int64) (int64, error) {
	var res nft.Holding
	id.Contract = id.Contract.ToLower()
	id.Owner = id.Owner.ToLower()
	if err := im.q.Increment(c, domain.TableNftHoldings, id, &res, "balance", value); err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("q.Increment failed")
		return 0, err
	}
	return res.Balance, nil
}
