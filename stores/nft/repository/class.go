package repository

import (
	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/nft"
	"github.com/mintora/goledger/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type classImpl struct {
	q query.Mongo
}

func NewClassRepo(q query.Mongo) nft.ClassRepo {
	return &classImpl{q}
}

func (im *classImpl) FindOne(c ctx.Ctx, address domain.Address) (*nft.Class, error) {
	var class nft.Class
	qry := bson.M{"address": address.ToLower()}
	if err := im.q.FindOne(c, domain.TableNftClasses, qry, &class); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &class, nil
}

func (im *classImpl) FindAll(c ctx.Ctx, offset int32, limit int32) ([]*nft.Class, error) {
	res := []*nft.Class{}
	if err := im.q.Search(c, domain.TableNftClasses, int(offset), int(limit), "address", bson.M{}, &res); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *classImpl) Insert(c ctx.Ctx, class *nft.Class) error {
	class.LowerCase()
	if err := im.q.Insert(c, domain.TableNftClasses, class); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"address": class.Address,
			"err":     err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}
