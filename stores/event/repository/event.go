package repository

import (
	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain"
	"github.com/mintora/goledger/domain/event"
	"github.com/mintora/goledger/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

// eventSeqCounter is the counter document feeding event.Repo.NextSeq.
var eventSeqCounter = bson.M{"name": "events"}

type impl struct {
	q query.Mongo
}

func New(q query.Mongo) event.Repo {
	return &impl{q}
}

func makeQuery(options event.FindAllOptions) bson.M {
	qry := bson.M{}

	if options.Type != nil {
		qry["type"] = *options.Type
	}

	if options.ListingId != nil {
		qry["listingId"] = *options.ListingId
	}

	if options.SwapId != nil {
		qry["swapId"] = *options.SwapId
	}

	if options.Account != nil {
		qry["account"] = *options.Account
	}

	if options.SeqGT != nil {
		qry["seq"] = bson.M{"$gt": *options.SeqGT}
	}

	return qry
}

func (im *impl) FindAll(c ctx.Ctx, opts ...event.FindAllOptionsFunc) ([]*event.Event, error) {
	options, err := event.GetFindAllOptions(opts...)
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

	res := []*event.Event{}
	if err := im.q.Search(c, domain.TableEvents, int(offset), int(limit), "seq", makeQuery(options), &res); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *impl) Count(c ctx.Ctx, opts ...event.FindAllOptionsFunc) (int, error) {
	options, err := event.GetFindAllOptions(opts...)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to GetFindAllOptions")
		return 0, err
	}

	count, err := im.q.Count(c, domain.TableEvents, makeQuery(options))
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("q.Count failed")
		return 0, err
	}
	return count, nil
}

func (im *impl) NextSeq(c ctx.Ctx) (int64, error) {
	var counter struct {
		Value int64 `bson:"value"`
	}
	if err := im.q.Increment(c, domain.TableCounters, eventSeqCounter, &counter, "value", int64(1)); err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("q.Increment failed")
		return 0, err
	}
	return counter.Value, nil
}

func (im *impl) LatestSeq(c ctx.Ctx) (int64, error) {
	var counter struct {
		Value int64 `bson:"value"`
	}
	err := im.q.FindOne(c, domain.TableCounters, eventSeqCounter, &counter)
	if err == query.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("q.FindOne failed")
		return 0, err
	}
	return counter.Value, nil
}

func (im *impl) Insert(c ctx.Ctx, ev *event.Event) error {
	if err := im.q.Insert(c, domain.TableEvents, ev); err != nil {
		c.WithFields(log.Fields{
			"seq": ev.Seq,
			"err": err,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}
