package repository

import (
	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/fungible"
	"github.com/mintora/goledger/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type tokenImpl struct {
	q query.Mongo
}

func NewTokenRepo(q query.Mongo) fungible.TokenRepo {
	return &tokenImpl{q}
}

func (im *tokenImpl) FindOne(c ctx.Ctx, address domain.Address) (*fungible.Token, error) {
	var token fungible.Token
	selector := bson.M{"address": address.ToLower()}
	if err := im.q.FindOne(c, domain.TableTokens, selector, &token); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &token, nil
}

func (im *tokenImpl) FindAll(c ctx.Ctx, opts ...fungible.FindAllOptionsFunc) ([]*fungible.Token, error) {
	options, err := fungible.GetFindAllOptions(opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to GetFindAllOptions")
		return nil, err
	}

	offset := 0
	limit := 0
	qry := bson.M{}

	if options.Creator != nil {
		qry["creator"] = options.Creator.ToLower()
	}

	if options.Offset != nil {
		offset = int(*options.Offset)
	}

	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	res := []*fungible.Token{}
	if err := im.q.Search(c, domain.TableTokens, offset, limit, "address", qry, &res); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to Search")
		return nil, err
	}
	return res, nil
}

func (im *tokenImpl) Insert(c ctx.Ctx, token *fungible.Token) error {
	token.LowerCase()
	if err := im.q.Insert(c, domain.TableTokens, token); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": token.Address,
		}).Error("failed to Insert")
		return err
	}
	return nil
}

func (im *tokenImpl) Patch(c ctx.Ctx, address domain.Address, patchable fungible.TokenPatchable) error {
	selector := bson.M{"address": address.ToLower()}
	if err := im.q.Patch(c, domain.TableTokens, selector, patchable); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to Patch")
		return err
	}
	return nil
}
