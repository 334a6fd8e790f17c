package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/database/mongoclient"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/marketplace"
	"github.com/mintora/goledger/service/query"
)

type blacklistImpl struct {
	q query.Mongo
}

func NewBlacklistRepo(q query.Mongo) marketplace.BlacklistRepo {
	return &blacklistImpl{q}
}

func (im *blacklistImpl) FindAll(c ctx.Ctx) ([]*marketplace.BlacklistEntry, error) {
	res := []*marketplace.BlacklistEntry{}

	// to prevent scancol error
	qry := bson.M{"address": bson.M{"$exists": true}}

	if err := im.q.Search(c, domain.TableBlacklist, 0, 0, "_id", qry, &res); err != nil {
		return nil, err
	}

	return res, nil
}

// FindOne returns nil without error when the address is not
// blacklisted.
func (im *blacklistImpl) FindOne(c ctx.Ctx, address domain.Address) (*marketplace.BlacklistEntry, error) {
	res := &marketplace.BlacklistEntry{}

	qry := bson.M{"address": address.ToLower()}
	if err := im.q.FindOne(c, domain.TableBlacklist, qry, res); err != nil && err != query.ErrNotFound {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	} else if err == query.ErrNotFound {
		return nil, nil
	}
	return res, nil
}

func (im *blacklistImpl) Create(c ctx.Ctx, entry marketplace.BlacklistEntry) error {
	entry.Address = entry.Address.ToLower()
	if err := im.q.Insert(c, domain.TableBlacklist, entry); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *blacklistImpl) Delete(c ctx.Ctx, address domain.Address) error {
	if slr, err := mongoclient.MakeBsonM(marketplace.BlacklistEntry{Address: address.ToLower()}); err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	} else if err := im.q.Remove(c, domain.TableBlacklist, slr); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}
