package repository

import (
	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/escrow"
	"github.com/mintora/goledger/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type swapImpl struct {
	q query.Mongo
}

func NewSwapRepo(q query.Mongo) escrow.SwapRepo {
	return &swapImpl{q}
}

func (im *swapImpl) FindOne(c ctx.Ctx, swapId string) (*escrow.Swap, error) {
	var swap escrow.Swap
	qry := bson.M{"swapId": swapId}
	if err := im.q.FindOne(c, domain.TableSwaps, qry, &swap); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &swap, nil
}

func makeQuery(options escrow.FindAllOptions) bson.M {
	qry := bson.M{}

	if options.Maker != nil {
		qry["maker"] = options.Maker.ToLower()
	}

	if options.Status != nil {
		qry["status"] = *options.Status
	}

	return qry
}

func (im *swapImpl) FindAll(c ctx.Ctx, opts ...escrow.FindAllOptionsFunc) ([]*escrow.Swap, error) {
	options, err := escrow.GetFindAllOptions(opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to GetFindAllOptions")
		return nil, err
	}

	offset := int32(0)
	limit := int32(0)

	if options.Offset != nil {
		offset = *options.Offset
	}

	if options.Limit != nil {
		limit = *options.Limit
	}

	res := []*escrow.Swap{}
	if err := im.q.Search(c, domain.TableSwaps, int(offset), int(limit), "-createdAt", makeQuery(options), &res); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *swapImpl) Insert(c ctx.Ctx, swap *escrow.Swap) error {
	swap.LowerCase()
	if err := im.q.Insert(c, domain.TableSwaps, swap); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithFields(log.Fields{
			"swapId": swap.SwapId,
			"err":    err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *swapImpl) Update(c ctx.Ctx, swapId string, patchable escrow.SwapPatchable) error {
	selector := bson.M{"swapId": swapId}
	if patchable.ExecutedBy != nil {
		lowered := patchable.ExecutedBy.ToLower()
		patchable.ExecutedBy = &lowered
	}
	if err := im.q.Patch(c, domain.TableSwaps, selector, patchable); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"swapId": swapId,
			"err":    err,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
