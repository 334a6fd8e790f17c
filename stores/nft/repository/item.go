package repository

import (
	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/nft"
	"github.com/mintora/goledger/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type itemImpl struct {
	q query.Mongo
}

func NewItemRepo(q query.Mongo) nft.ItemRepo {
	return &itemImpl{q}
}

func (im *itemImpl) FindOne(c ctx.Ctx, id nft.ItemId) (*nft.Item, error) {
	var item nft.Item
	id.Contract = id.Contract.ToLower()
	if err := im.q.FindOne(c, domain.TableNftItems, id, &item); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &item, nil
}

func (im *itemImpl) FindAll(c ctx.Ctx, opts ...nft.ItemFindAllOptionsFunc) ([]*nft.Item, error) {
	options, err := nft.GetItemFindAllOptions(opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to GetItemFindAllOptions")
		return nil, err
	}

	offset := int32(0)
	limit := int32(0)
	qry := bson.M{}

	if options.Offset != nil {
		offset = *options.Offset
	}

	if options.Limit != nil {
		limit = *options.Limit
	}

	if options.Contract != nil {
		qry["contract"] = *options.Contract
	}

	if options.Owner != nil {
		qry["owner"] = *options.Owner
	}

	res := []*nft.Item{}
	if err := im.q.Search(c, domain.TableNftItems, int(offset), int(limit), "tokenId", qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *itemImpl) Insert(c ctx.Ctx, item *nft.Item) error {
	item.Contract = item.Contract.ToLower()
	item.Owner = item.Owner.ToLower()
	if err := im.q.Insert(c, domain.TableNftItems, item); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"contract": item.Contract,
			"tokenId":  item.TokenId,
			"err":      err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *itemImpl) Update(c ctx.Ctx, id nft.ItemId, patchable nft.ItemPatchable) error {
	id.Contract = id.Contract.ToLower()
	if patchable.Owner != nil {
		lowered := patchable.Owner.ToLower()
		patchable.Owner = &lowered
	}
	if err := im.q.Patch(c, domain.TableNftItems, id, patchable); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"id":  id,
			"err": err,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
