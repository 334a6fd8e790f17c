package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/mintora/goledger/base/ctx"
	"github.com/mintora/goledger/base/log"
	"github.com/mintora/goledger/domain/event"
)

type EventUseCaseCfg struct {
	EventRepo event.Repo
}

type impl struct {
	events event.Repo
}

// New creates event usecase
func New(cfg *EventUseCaseCfg) event.UseCase {
	return &impl{
		events: cfg.EventRepo,
	}
}

func (im *impl) Emit(c ctx.Ctx, ev *event.Event) (*event.Event, error) {
	seq, err := im.events.NextSeq(c)
	if err != nil {
		c.WithFields(log.Fields{
			"type": ev.Type,
			"err":  err,
		}).Error("events.NextSeq failed")
		return nil, err
	}

	now := time.Now()
	ev.Seq = seq
	ev.EventId = uuid.New().String()
	ev.CreatedAt = &now
	ev.Account = ev.Account.ToLower()
	ev.Seller = ev.Seller.ToLower()
	ev.AssetContract = ev.AssetContract.ToLower()
	ev.PayToken = ev.PayToken.ToLower()

	if err := im.events.Insert(c, ev); err != nil {
		c.WithFields(log.Fields{
			"seq":  ev.Seq,
			"type": ev.Type,
			"err":  err,
		}).Error("events.Insert failed")
		return nil, err
	}
	return ev, nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...event.FindAllOptionsFunc) ([]*event.Event, error) {
	return im.events.FindAll(c, opts...)
}

func (im *impl) Count(c ctx.Ctx, opts ...event.FindAllOptionsFunc) (int, error) {
	return im.events.Count(c, opts...)
}

func (im *impl) LatestSeq(c ctx.Ctx) (int64, error) {
	return im.events.LatestSeq(c)
}
