package mongo

import (
	bCtx "github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/database/mongoclient"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/service/query"
)

type feedStateMongoRepo struct {
	m query.Mongo
}

func NewFeedStateMongoRepo(mCon query.Mongo) domain.FeedStateRepo {
	return &feedStateMongoRepo{m: mCon}
}

func (r *feedStateMongoRepo) Get(ctx bCtx.Ctx, id *domain.FeedStateId) (*domain.FeedState, error) {
	qry, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to make bson.M")
		return nil, err
	}

	state := &domain.FeedState{}
	if err := r.m.FindOne(ctx, domain.TableFeedStates, qry, state); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  qry,
		}).Error("failed to FindOne")
		return nil, err
	}
	return state, nil
}

func (r *feedStateMongoRepo) Update(ctx bCtx.Ctx, state *domain.FeedState) error {
	selector, err := mongoclient.MakeBsonM(state.ToId())
	if err != nil {
		ctx.WithField("err", err).Error("failed to make bson.M")
		return err
	}
	if err := r.m.Patch(ctx, domain.TableFeedStates, selector, state); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  state.ToId(),
		}).Error("failed to update")
		return err
	}
	return nil
}

func (r *feedStateMongoRepo) Store(ctx bCtx.Ctx, state *domain.FeedState) error {
	if err := r.m.Insert(ctx, domain.TableFeedStates, state); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  state.ToId(),
		}).Error("failed to store")
		return err
	}
	return nil
}
