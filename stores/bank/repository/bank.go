package repository

import (
	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/bank"
	"github.com/mintora/goledger/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) bank.Repo {
	return &impl{q}
}

func (im *impl) FindOne(c ctx.Ctx, address domain.Address) (*bank.Account, error) {
	var account bank.Account
	selector := bson.M{"address": address.ToLower()}
	if err := im.q.FindOne(c, domain.TableBankAccounts, selector, &account); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &account, nil
}

func (im *impl) FindAll(c ctx.Ctx, offset int32, limit int32) ([]*bank.Account, error) {
	res := []*bank.Account{}
	if err := im.q.Search(c, domain.TableBankAccounts, int(offset), int(limit), "address", bson.M{}, &res); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to Search")
		return nil, err
	}
	return res, nil
}

func (im *impl) Upsert(c ctx.Ctx, account *bank.Account) error {
	account.Address = account.Address.ToLower()
	selector := bson.M{"address": account.Address}
	if err := im.q.Upsert(c, domain.TableBankAccounts, selector, account); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": account.Address,
		}).Error("failed to Upsert")
		return err
	}
	return nil
}
